// Package config loads the TOML configuration shared by the navsat
// commands and turns it into library options.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/navsat/gateway"
	"github.com/katalvlaran/navsat/navmesh"
	"github.com/katalvlaran/navsat/pathfinder"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	NavMesh    NavMeshConfig    `toml:"navmesh"`
	Legacy     LegacyConfig     `toml:"legacy"`
	Playground PlaygroundConfig `toml:"playground"`
	Bench      BenchConfig      `toml:"bench"`
	Logging    LoggingConfig    `toml:"logging"`
}

type NavMeshConfig struct {
	SectorSize          int  `toml:"sector_size"` // mini tiles per sector side
	CachePaths          bool `toml:"cache_paths"`
	Disabled            bool `toml:"disabled"` // fall back to the legacy backend
	Debug               bool `toml:"debug"`
	LocalIterations     int  `toml:"local_iterations"`
	EarlyExitIterations int  `toml:"early_exit_iterations"`
	GatewayIterations   int  `toml:"gateway_iterations"`
}

type LegacyConfig struct {
	Iterations int `toml:"iterations"` // A* pops per Next call
	MaxTries   int `toml:"max_tries"`  // Pending answers before NotFound
}

type PlaygroundConfig struct {
	Addr    string `toml:"addr"`
	MapsDir string `toml:"maps_dir"`
}

type BenchConfig struct {
	MapsDir      string `toml:"maps_dir"`
	ScenariosDir string `toml:"scenarios_dir"`
	Adapter      string `toml:"adapter"` // "legacy", "hpa" or "hpa.cached"
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		NavMesh: NavMeshConfig{
			SectorSize:          gateway.DefaultSectorSize,
			CachePaths:          true,
			LocalIterations:     navmesh.DefaultLocalIterations,
			EarlyExitIterations: navmesh.DefaultEarlyExitIterations,
			GatewayIterations:   navmesh.DefaultGatewayIterations,
		},
		Legacy: LegacyConfig{
			Iterations: pathfinder.DefaultIterations,
			MaxTries:   pathfinder.DefaultMaxTries,
		},
		Playground: PlaygroundConfig{
			Addr:    ":5555",
			MapsDir: "maps",
		},
		Bench: BenchConfig{
			MapsDir:      "maps",
			ScenariosDir: "scenarios",
			Adapter:      "hpa",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    int
	}{
		{"navmesh.sector_size", c.NavMesh.SectorSize},
		{"navmesh.local_iterations", c.NavMesh.LocalIterations},
		{"navmesh.early_exit_iterations", c.NavMesh.EarlyExitIterations},
		{"navmesh.gateway_iterations", c.NavMesh.GatewayIterations},
		{"legacy.iterations", c.Legacy.Iterations},
		{"legacy.max_tries", c.Legacy.MaxTries},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v))
		}
	}
	switch c.Bench.Adapter {
	case "legacy", "hpa", "hpa.cached":
	default:
		errs = append(errs, fmt.Errorf("%w: bench.adapter %q", ErrInvalidConfig, c.Bench.Adapter))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format))
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err))
	}

	return errors.Join(errs...)
}

// NavMeshOptions converts the [navmesh] section.
func (c *Config) NavMeshOptions() []navmesh.Option {
	n := c.NavMesh

	return []navmesh.Option{
		navmesh.WithSectorSize(n.SectorSize),
		navmesh.WithCachePaths(n.CachePaths),
		navmesh.WithDebug(n.Debug),
		navmesh.WithLocalIterations(n.LocalIterations),
		navmesh.WithEarlyExitIterations(n.EarlyExitIterations),
		navmesh.WithGatewayIterations(n.GatewayIterations),
	}
}

// LegacyOptions converts the [legacy] section.
func (c *Config) LegacyOptions() pathfinder.Options {
	return pathfinder.Options{Iterations: c.Legacy.Iterations, MaxTries: c.Legacy.MaxTries}
}
