// navbench measures a pathfinding backend on a scenario, or generates a
// synthetic scenario for a map.
//
// Usage:
//
//	navbench [-config c.toml] -scenario s.yaml [-adapter hpa|hpa.cached|legacy] [-n 10] [-silent]
//	navbench [-config c.toml] -generate 50 -map iceland [-seed 42] -out s.yaml
//
// A -scenario without a path separator is looked up as
// <bench.scenarios_dir>/<name>.yaml. Maps are read from bench.maps_dir.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/config"
	"github.com/katalvlaran/navsat/scenario"
	"github.com/katalvlaran/navsat/world"
)

var (
	configPath   = flag.String("config", "", "TOML configuration file")
	scenarioPath = flag.String("scenario", "", "scenario file or name")
	adapterName  = flag.String("adapter", "", "backend: hpa, hpa.cached or legacy (default bench.adapter)")
	executions   = flag.Int("n", 10, "timed executions per route")
	silent       = flag.Bool("silent", false, "print a single summary line")
	generate     = flag.Int("generate", 0, "generate a scenario with this many ports")
	mapName      = flag.String("map", "", "map directory name for -generate")
	seed         = flag.Int64("seed", 42, "random seed for -generate")
	outPath      = flag.String("out", "", "output file for -generate")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "navbench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if *generate > 0 {
		return runGenerate(cfg, logger)
	}
	if *scenarioPath == "" {
		flag.Usage()
		return fmt.Errorf("missing -scenario")
	}
	adapter := cfg.Bench.Adapter
	if *adapterName != "" {
		adapter = *adapterName
	}

	return runBench(cfg, logger, adapter)
}

func runGenerate(cfg *config.Config, logger *zap.Logger) error {
	if *mapName == "" || *outPath == "" {
		return fmt.Errorf("-generate needs -map and -out")
	}
	w, err := world.Load(filepath.Join(cfg.Bench.MapsDir, *mapName),
		world.WithLogger(logger), world.WithNavMesh(false))
	if err != nil {
		return err
	}
	s, err := scenario.Generate(w, *generate, *seed)
	if err != nil {
		return err
	}
	if err := scenario.Save(*outPath, s); err != nil {
		return err
	}
	logger.Info("scenario generated",
		zap.String("map", s.Map),
		zap.Int("ports", len(s.Ports)),
		zap.Int("routes", len(s.Routes)),
		zap.String("out", *outPath))

	return nil
}

func runBench(cfg *config.Config, logger *zap.Logger, adapter string) error {
	path := *scenarioPath
	if !strings.ContainsRune(path, filepath.Separator) && filepath.Ext(path) == "" {
		path = filepath.Join(cfg.Bench.ScenariosDir, path+".yaml")
	}
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	start := time.Now()
	w, err := world.Load(filepath.Join(cfg.Bench.MapsDir, s.Map),
		world.WithLogger(logger),
		world.WithNavMesh(adapter == "hpa.cached"),
		world.WithNavMeshOptions(cfg.NavMeshOptions()...))
	if err != nil {
		return err
	}
	pf, err := scenario.Adapter(adapter, w, scenario.LegacyOptions, cfg.NavMeshOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %q", err, adapter)
	}
	initTime := time.Since(start)

	routes, err := s.Resolve(w)
	if err != nil {
		return err
	}
	results := scenario.Run(pf, routes, *executions)
	sum := scenario.Summarize(results)

	if *silent {
		status := "ok  "
		if sum.SuccessfulRoutes < sum.TotalRoutes {
			status = "warn"
		}
		fmt.Printf("%s %-35s | init %10s | path %10s | dist %7d tiles | routes %d/%d\n",
			status, filepath.Base(path), ms(initTime), ms(sum.TotalTime),
			sum.TotalDistance, sum.SuccessfulRoutes, sum.TotalRoutes)
		return nil
	}

	fmt.Printf("Date: %s\nAdapter: %s\nScenario: %s\nMap: %s\nRoutes: %d\n\n",
		time.Now().Format(time.RFC3339), adapter, path, s.Map, len(routes))
	fmt.Printf("Initialization: %s\n\n", ms(initTime))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tLENGTH\tTIME")
	for _, r := range results {
		if !r.Found {
			fmt.Fprintf(tw, "%s\tFAILED\t-\n", r.Route)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d tiles\t%s\n", r.Route, r.PathLength, ms(r.Duration))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()
	if sum.SuccessfulRoutes < sum.TotalRoutes {
		fmt.Printf("Warning: only %d of %d routes completed\n", sum.SuccessfulRoutes, sum.TotalRoutes)
	}
	fmt.Printf("Distance: %d tiles\nPathfinding: %s total, %s average\n",
		sum.TotalDistance, ms(sum.TotalTime), ms(sum.AvgTime))

	return nil
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
