package gateway

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/gamemap"
)

// DefaultSectorSize is the side of a sector in mini-map tiles.
const DefaultSectorSize = 32

// distanceSlack multiplies the farthest Manhattan distance to a target to
// get the BFS depth limit when linking gateways.
const distanceSlack = 4

// Gateway is a water tile on a sector border that links two sectors.
type Gateway struct {
	ID          int
	X, Y        int
	Tile        gamemap.TileRef
	ComponentID uint32
}

// Edge is one direction of a water connection between two gateways.
// Path, when set, holds full-resolution tiles from From's tile to To's tile.
type Edge struct {
	From, To         int
	Cost             int
	Path             []gamemap.TileRef
	SectorX, SectorY int
}

// Sector is one S×S square of the mini-map.
type Sector struct {
	X, Y     int
	Gateways []*Gateway
	Edges    []*Edge
}

// BuildDebugInfo reports what Builder.Build did.
type BuildDebugInfo struct {
	Sectors    int
	Gateways   int
	Edges      int
	Components int
	// PotentialBFSCalls counts gateway pairs per sector.
	PotentialBFSCalls int
	// SkippedByComponentFilter counts pairs in different water components.
	SkippedByComponentFilter int
	ActualBFSCalls           int
	Timings                  map[string]time.Duration
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for debug output (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}
