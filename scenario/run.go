package scenario

import (
	"time"

	"github.com/katalvlaran/navsat/navmesh"
	"github.com/katalvlaran/navsat/pathfinder"
	"github.com/katalvlaran/navsat/world"
)

// LegacyOptions are the legacy backend budgets used for benchmarking.
var LegacyOptions = pathfinder.Options{Iterations: 500000, MaxTries: 50}

// Result is the measurement of one route.
type Result struct {
	Route      string
	Found      bool
	PathLength int
	// Duration is the mean FindPath time; zero when the route failed.
	Duration time.Duration
}

// Summary folds a set of results.
type Summary struct {
	TotalRoutes      int
	SuccessfulRoutes int
	TotalDistance    int
	TotalTime        time.Duration
	AvgTime          time.Duration
}

// Run measures the path length of every route once, then times
// executions FindPath calls for each route that was found.
func Run(pf pathfinder.PathFinder, routes []Route, executions int) []Result {
	executions = max(executions, 1)
	results := make([]Result, len(routes))
	for i, r := range routes {
		results[i].Route = r.Name
		if p := pf.FindPath(r.From, r.To); p != nil {
			results[i].Found = true
			results[i].PathLength = len(p)
		}
	}
	for i, r := range routes {
		if !results[i].Found {
			continue
		}
		start := time.Now()
		for k := 0; k < executions; k++ {
			pf.FindPath(r.From, r.To)
		}
		results[i].Duration = time.Since(start) / time.Duration(executions)
	}

	return results
}

// Summarize totals distance and time over the found routes.
func Summarize(results []Result) Summary {
	s := Summary{TotalRoutes: len(results)}
	for _, r := range results {
		if !r.Found {
			continue
		}
		s.SuccessfulRoutes++
		s.TotalDistance += r.PathLength
		s.TotalTime += r.Duration
	}
	if s.SuccessfulRoutes > 0 {
		s.AvgTime = s.TotalTime / time.Duration(s.SuccessfulRoutes)
	}

	return s
}

// Adapter returns the PathFinder named by name:
//
//	legacy      the mini-map A* backend with the legacy options
//	hpa         a NavMesh built for this call, without edge path caching
//	hpa.cached  the world's own NavMesh
func Adapter(name string, w *world.World, legacy pathfinder.Options, meshOpts ...navmesh.Option) (pathfinder.PathFinder, error) {
	switch name {
	case "legacy":
		return pathfinder.WaterLegacy(w, legacy), nil
	case "hpa":
		opts := append(append([]navmesh.Option(nil), meshOpts...), navmesh.WithCachePaths(false))
		mesh := navmesh.New(w.Full(), w.Mini(), opts...)
		mesh.Initialize()
		return pathfinder.NewNavMeshAdapter(meshSource{World: w, mesh: mesh})
	case "hpa.cached":
		return pathfinder.NewNavMeshAdapter(w)
	default:
		return nil, ErrUnknownAdapter
	}
}

// meshSource is a world seen through a different NavMesh.
type meshSource struct {
	*world.World
	mesh *navmesh.NavMesh
}

func (s meshSource) NavMesh() *navmesh.NavMesh { return s.mesh }
