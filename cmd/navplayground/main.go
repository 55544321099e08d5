// navplayground serves the pathfinding playground API.
//
// Usage:
//
//	navplayground [-config c.toml] [-addr :5555] [-maps dir] [-no-cache]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/config"
	"github.com/katalvlaran/navsat/navmesh"
	"github.com/katalvlaran/navsat/playground"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	addr       = flag.String("addr", "", "listen address (default playground.addr)")
	mapsDir    = flag.String("maps", "", "maps directory (default playground.maps_dir)")
	noCache    = flag.Bool("no-cache", false, "disable gateway edge path caching")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "navplayground: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Playground.Addr = *addr
	}
	if *mapsDir != "" {
		cfg.Playground.MapsDir = *mapsDir
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	meshOpts := append(cfg.NavMeshOptions(), navmesh.WithLogger(logger))
	if *noCache {
		meshOpts = append(meshOpts, navmesh.WithCachePaths(false))
		logger.Info("path caching disabled")
	}
	srv := &http.Server{
		Addr: cfg.Playground.Addr,
		Handler: playground.New(cfg.Playground.MapsDir,
			playground.WithLogger(logger),
			playground.WithNavMesh(!cfg.NavMesh.Disabled),
			playground.WithNavMeshOptions(meshOpts...),
			playground.WithLegacyOptions(cfg.LegacyOptions())),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("playground listening",
		zap.String("addr", cfg.Playground.Addr),
		zap.String("maps", cfg.Playground.MapsDir))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
