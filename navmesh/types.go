package navmesh

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/gamemap"
)

// Default search budgets, in A* heap pops.
const (
	DefaultLocalIterations     = 10000
	DefaultEarlyExitIterations = 2000
	DefaultGatewayIterations   = 100000
)

// maxTraceTiles bounds a single line-of-sight trace.
const maxTraceTiles = 100000

// Option configures a NavMesh.
type Option func(*options)

type options struct {
	cachePaths          bool
	sectorSize          int
	logger              *zap.Logger
	debug               bool
	localIterations     int
	earlyExitIterations int
	gatewayIterations   int
}

func defaultOptions() options {
	return options{
		cachePaths:          true,
		logger:              zap.NewNop(),
		localIterations:     DefaultLocalIterations,
		earlyExitIterations: DefaultEarlyExitIterations,
		gatewayIterations:   DefaultGatewayIterations,
	}
}

// WithCachePaths toggles caching of stitched edge segments (default on).
func WithCachePaths(on bool) Option {
	return func(o *options) { o.cachePaths = on }
}

// WithSectorSize overrides the sector side in mini tiles. Values <= 0 keep
// gateway.DefaultSectorSize.
func WithSectorSize(s int) Option {
	return func(o *options) { o.sectorSize = s }
}

// WithLogger sets the logger for build and query debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDebug makes Initialize collect and log gateway build statistics.
func WithDebug(on bool) Option {
	return func(o *options) { o.debug = on }
}

// WithLocalIterations sets the budget of sector-local searches.
func WithLocalIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.localIterations = n
		}
	}
}

// WithEarlyExitIterations sets the budget of the short-distance search.
func WithEarlyExitIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.earlyExitIterations = n
		}
	}
}

// WithGatewayIterations sets the budget of the gateway graph search.
func WithGatewayIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.gatewayIterations = n
		}
	}
}

// PathDebugInfo describes one FindPathDebug query.
type PathDebugInfo struct {
	// GatewayPath lists the mini-map tiles of the gateways crossed.
	GatewayPath []gamemap.TileRef `json:"gatewayPath"`
	// InitialPath is the stitched path before smoothing.
	InitialPath []gamemap.TileRef `json:"initialPath"`
	SmoothPath  []gamemap.TileRef `json:"smoothPath"`
	Graph       GraphSnapshot     `json:"graph"`
	// Timings per phase; "total" is the sum of the phases that ran.
	Timings map[string]time.Duration `json:"timings"`
}

// GraphSnapshot is the gateway graph as seen by a debug query.
type GraphSnapshot struct {
	SectorSize int               `json:"sectorSize"`
	Gateways   []GatewaySnapshot `json:"gateways"`
	Edges      []EdgeSnapshot    `json:"edges"`
}

// GatewaySnapshot identifies a gateway by id and mini-map tile.
type GatewaySnapshot struct {
	ID   int             `json:"id"`
	Tile gamemap.TileRef `json:"tile"`
}

// EdgeSnapshot is one undirected gateway connection (FromID <= ToID).
type EdgeSnapshot struct {
	FromID int               `json:"fromId"`
	ToID   int               `json:"toId"`
	From   gamemap.TileRef   `json:"from"`
	To     gamemap.TileRef   `json:"to"`
	Cost   int               `json:"cost"`
	Path   []gamemap.TileRef `json:"path"`
}
