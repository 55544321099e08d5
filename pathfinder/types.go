package pathfinder

import (
	"errors"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
)

// ErrNoNavMesh is returned by NewNavMeshAdapter when the source has no
// initialized NavMesh.
var ErrNoNavMesh = errors.New("pathfinder: navmesh not available")

// Status is the outcome of one Next call.
type Status uint8

const (
	// Next: move to Result.Node.
	Next Status = iota
	// Pending: the search needs more calls.
	Pending
	// Complete: arrived; Result.Node is where the unit ends.
	Complete
	// NotFound: no path.
	NotFound
)

func (s Status) String() string {
	switch s {
	case Next:
		return "NEXT"
	case Pending:
		return "PENDING"
	case Complete:
		return "COMPLETE"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Result of Next. Node is meaningful for Next and Complete only.
type Result struct {
	Status Status
	Node   gamemap.TileRef
}

// PathFinder moves a unit towards a destination one tile at a time.
type PathFinder interface {
	// Next returns the step from from towards to. A positive dist completes
	// as soon as the Manhattan distance is at most dist.
	Next(from, to gamemap.TileRef, dist int) Result
	// FindPath returns the whole path, both endpoints included, or nil.
	FindPath(from, to gamemap.TileRef) []gamemap.TileRef
}

// Source provides the maps a PathFinder works on.
type Source interface {
	Map() gamemap.Grid
	MiniMap() gamemap.Grid
	NavMesh() *navmesh.NavMesh
}

// Defaults of the legacy backend.
const (
	DefaultIterations = 10000
	DefaultMaxTries   = 100
)

// maxFindPathSteps bounds the Next loop of MiniAStarAdapter.FindPath.
const maxFindPathSteps = 100000

// Options tune the legacy backend. Zero values select the defaults.
type Options struct {
	// Iterations is the A* budget of one Next call.
	Iterations int
	// MaxTries is the number of Pending answers before giving up.
	MaxTries int
}

func (o Options) withDefaults() Options {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.MaxTries <= 0 {
		o.MaxTries = DefaultMaxTries
	}

	return o
}
