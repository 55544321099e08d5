package pathfinder

import (
	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
)

// NavMeshAdapter serves Next from whole paths planned by a NavMesh.
type NavMeshAdapter struct {
	grid   gamemap.Grid
	mesh   *navmesh.NavMesh
	path   []gamemap.TileRef
	index  int
	lastTo gamemap.TileRef
}

// NewNavMeshAdapter returns ErrNoNavMesh unless src.NavMesh() is initialized.
func NewNavMeshAdapter(src Source) (*NavMeshAdapter, error) {
	mesh := src.NavMesh()
	if mesh == nil || !mesh.Initialized() {
		return nil, ErrNoNavMesh
	}

	return &NavMeshAdapter{grid: src.Map(), mesh: mesh, lastTo: gamemap.InvalidTile}, nil
}

// Next implements PathFinder.
func (a *NavMeshAdapter) Next(from, to gamemap.TileRef, dist int) Result {
	if !a.grid.IsValidRef(from) || !a.grid.IsValidRef(to) {
		return Result{Status: NotFound}
	}
	if from == to {
		return Result{Status: Complete, Node: to}
	}
	if dist > 0 && gamemap.ManhattanDist(a.grid, from, to) <= dist {
		return Result{Status: Complete, Node: from}
	}

	if to != a.lastTo {
		a.path, a.index, a.lastTo = nil, 0, to
	}
	if a.path == nil && !a.plan(from, to) {
		return Result{Status: NotFound}
	}
	if a.index > 0 && from != a.path[a.index-1] && !a.plan(from, to) {
		return Result{Status: NotFound}
	}

	if a.index >= len(a.path) {
		return Result{Status: Complete, Node: to}
	}
	next := a.path[a.index]
	a.index++

	return Result{Status: Next, Node: next}
}

// plan replaces the cached path, positioned after from.
func (a *NavMeshAdapter) plan(from, to gamemap.TileRef) bool {
	a.path = a.mesh.FindPath(from, to)
	a.index = 0
	if a.path == nil {
		return false
	}
	if a.path[0] == from {
		a.index = 1
	}

	return true
}

// FindPath implements PathFinder.
func (a *NavMeshAdapter) FindPath(from, to gamemap.TileRef) []gamemap.TileRef {
	return a.mesh.FindPath(from, to)
}
