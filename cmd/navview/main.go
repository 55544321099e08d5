// navview shows a water route on the terminal.
//
// Usage:
//
//	navview [-config c.toml] -map maps/iceland -from 120,40 -to 300,212
//
// Arrow keys pan, p recomputes the path, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/config"
	"github.com/katalvlaran/navsat/viewer"
	"github.com/katalvlaran/navsat/world"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	mapDir     = flag.String("map", "", "map directory")
	fromFlag   = flag.String("from", "", "start tile as x,y")
	toFlag     = flag.String("to", "", "destination tile as x,y")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "navview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *mapDir == "" || *fromFlag == "" || *toFlag == "" {
		flag.Usage()
		return fmt.Errorf("-map, -from and -to are required")
	}
	fx, fy, err := parsePoint(*fromFlag)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	tx, ty, err := parsePoint(*toFlag)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	w, err := world.Load(*mapDir,
		world.WithLogger(logger),
		world.WithNavMesh(!cfg.NavMesh.Disabled),
		world.WithNavMeshOptions(cfg.NavMeshOptions()...))
	if err != nil {
		return err
	}
	m := w.Full()
	if !m.InBounds(fx, fy) || !m.InBounds(tx, ty) {
		return fmt.Errorf("route (%d,%d) -> (%d,%d) outside %dx%d map", fx, fy, tx, ty, m.Width(), m.Height())
	}

	logger.Debug("starting viewer", zap.String("map", w.Name()), zap.Int("from", int(w.Ref(fx, fy))), zap.Int("to", int(w.Ref(tx, ty))))

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return viewer.Run(screen, w, w.Ref(fx, fy), w.Ref(tx, ty))
}

func parsePoint(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}
