// Package world bundles a loaded map: the full-resolution grid, its
// mini-map and, unless disabled, the NavMesh built over them.
package world

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
)

// World is one map ready for path queries.
type World struct {
	name string
	full *gamemap.Map
	mini *gamemap.Map
	mesh *navmesh.NavMesh
}

// Option configures New, FromRows and Load.
type Option func(*options)

type options struct {
	navMesh  bool
	meshOpts []navmesh.Option
	logger   *zap.Logger
}

// WithNavMesh toggles building the NavMesh (default on).
func WithNavMesh(on bool) Option {
	return func(o *options) { o.navMesh = on }
}

// WithNavMeshOptions passes options to navmesh.New.
func WithNavMeshOptions(opts ...navmesh.Option) Option {
	return func(o *options) { o.meshOpts = append(o.meshOpts, opts...) }
}

// WithLogger sets the logger used while loading and building.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New wraps full and mini. A nil mini is generated with gamemap.Downscale.
func New(name string, full, mini *gamemap.Map, opts ...Option) *World {
	o := options{navMesh: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if mini == nil {
		mini = gamemap.Downscale(full)
	}
	w := &World{name: name, full: full, mini: mini}

	if o.navMesh {
		start := time.Now()
		meshOpts := append([]navmesh.Option{navmesh.WithLogger(o.logger)}, o.meshOpts...)
		w.mesh = navmesh.New(full, mini, meshOpts...)
		w.mesh.Initialize()
		g := w.mesh.Graph()
		o.logger.Info("navmesh ready",
			zap.String("map", name),
			zap.Int("gateways", g.GatewayCount()),
			zap.Int("edges", g.EdgeCount()),
			zap.Duration("elapsed", time.Since(start)))
	}

	return w
}

// FromRows builds a world from rows of 'W' (water) and 'L' (land).
func FromRows(rows []string, opts ...Option) (*World, error) {
	full, err := gamemap.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return New("rows", full, nil, opts...), nil
}

// Load reads a map directory (see gamemap.LoadDir).
func Load(dir string, opts ...Option) (*World, error) {
	full, mini, mf, err := gamemap.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("world: load %s: %w", dir, err)
	}

	return New(mf.Name, full, mini, opts...), nil
}

// Name returns the map name.
func (w *World) Name() string { return w.name }

// Map returns the full-resolution grid.
func (w *World) Map() gamemap.Grid { return w.full }

// MiniMap returns the half-resolution grid.
func (w *World) MiniMap() gamemap.Grid { return w.mini }

// Full returns the full-resolution map with its terrain.
func (w *World) Full() *gamemap.Map { return w.full }

// Mini returns the mini-map with its terrain.
func (w *World) Mini() *gamemap.Map { return w.mini }

// NavMesh returns the NavMesh, nil when built WithNavMesh(false).
func (w *World) NavMesh() *navmesh.NavMesh { return w.mesh }

// Ref returns the full-map tile at (x, y).
func (w *World) Ref(x, y int) gamemap.TileRef { return w.full.Ref(x, y) }

// X returns the column of a full-map tile.
func (w *World) X(t gamemap.TileRef) int { return w.full.X(t) }

// Y returns the row of a full-map tile.
func (w *World) Y(t gamemap.TileRef) int { return w.full.Y(t) }

// ManhattanDist returns the Manhattan distance between two full-map tiles.
func (w *World) ManhattanDist(a, b gamemap.TileRef) int {
	return gamemap.ManhattanDist(w.full, a, b)
}
