package pathfinder

import (
	"github.com/katalvlaran/navsat/astar"
	"github.com/katalvlaran/navsat/gamemap"
)

// MiniAStarAdapter is the legacy backend: an incremental A* over every
// water tile of the mini-map, upscaled to the full map.
type MiniAStarAdapter struct {
	full, mini gamemap.Grid
	opts       Options
	search     *astar.Searcher
	grid       waterGrid

	inc        *astar.Incremental
	searchFrom gamemap.TileRef
	path       []gamemap.TileRef // remaining tiles, next first
	lastTo     gamemap.TileRef
	lastNext   gamemap.TileRef
}

// NewMiniAStarAdapter returns the legacy backend over src's maps.
func NewMiniAStarAdapter(src Source, opts Options) *MiniAStarAdapter {
	mini := src.MiniMap()

	return &MiniAStarAdapter{
		full:     src.Map(),
		mini:     mini,
		opts:     opts.withDefaults(),
		search:   astar.NewSearcher(mini.Width() * mini.Height()),
		grid:     waterGrid{g: mini},
		lastTo:   gamemap.InvalidTile,
		lastNext: gamemap.InvalidTile,
	}
}

// Next implements PathFinder. It answers Pending while the search runs.
func (a *MiniAStarAdapter) Next(from, to gamemap.TileRef, dist int) Result {
	if !a.full.IsValidRef(from) || !a.full.IsValidRef(to) {
		return Result{Status: NotFound}
	}
	if from == to || (dist > 0 && gamemap.ManhattanDist(a.full, from, to) <= dist) {
		return Result{Status: Complete, Node: from}
	}

	switch {
	case to != a.lastTo:
		a.begin(from, to)
	case a.inc != nil && from != a.searchFrom:
		a.begin(from, to)
	case a.inc == nil && (len(a.path) == 0 || from != a.lastNext):
		a.begin(from, to)
	}

	if a.inc != nil {
		switch a.inc.Step() {
		case astar.Pending:
			return Result{Status: Pending}
		case astar.NotFound:
			a.inc = nil
			return Result{Status: NotFound}
		}
		a.path = a.upscale(from, to, a.inc.Path())[1:]
		a.inc = nil
	}

	next := a.path[0]
	a.path = a.path[1:]
	a.lastNext = next

	return Result{Status: Next, Node: next}
}

// begin starts a new search from from to to.
func (a *MiniAStarAdapter) begin(from, to gamemap.TileRef) {
	start := a.mini.Ref(a.full.X(from)/2, a.full.Y(from)/2)
	goal := a.mini.Ref(a.full.X(to)/2, a.full.Y(to)/2)
	a.inc = astar.NewIncremental(a.search, int(start), int(goal), &a.grid, a.opts.Iterations, a.opts.MaxTries)
	a.searchFrom = from
	a.lastTo = to
	a.lastNext = gamemap.InvalidTile
	a.path = nil
}

func (a *MiniAStarAdapter) upscale(from, to gamemap.TileRef, nodes []int) []gamemap.TileRef {
	mini := make([]gamemap.TileRef, len(nodes))
	for i, n := range nodes {
		mini[i] = gamemap.TileRef(n)
	}

	return gamemap.UpscalePath(a.full, a.mini, mini, from, to)
}

// FindPath implements PathFinder by looping Next.
func (a *MiniAStarAdapter) FindPath(from, to gamemap.TileRef) []gamemap.TileRef {
	path := []gamemap.TileRef{from}
	current := from
	for i := 0; i < maxFindPathSteps; i++ {
		r := a.Next(current, to, 0)
		switch r.Status {
		case Complete:
			return path
		case NotFound:
			return nil
		case Next:
			current = r.Node
			path = append(path, current)
		}
	}

	return nil
}

// waterGrid is an astar.Adapter over the water tiles of a grid.
type waterGrid struct {
	g    gamemap.Grid
	tbuf []gamemap.TileRef
}

func (w *waterGrid) Neighbors(node int, buf []int) []int {
	w.tbuf = w.g.Neighbors(gamemap.TileRef(node), w.tbuf[:0])
	for _, t := range w.tbuf {
		if w.g.IsWater(t) {
			buf = append(buf, int(t))
		}
	}

	return buf
}

func (w *waterGrid) Cost(_, _ int) float64 { return 1 }

func (w *waterGrid) Heuristic(node, goal int) float64 {
	return float64(gamemap.ManhattanDist(w.g, gamemap.TileRef(node), gamemap.TileRef(goal)))
}
