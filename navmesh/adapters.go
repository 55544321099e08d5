package navmesh

import (
	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/gateway"
)

// GatewayGraphAdapter exposes a gateway.Graph to astar: nodes are gateway
// ids, costs are edge costs and the heuristic is the Manhattan distance
// between gateway positions.
type GatewayGraphAdapter struct {
	g *gateway.Graph
}

// NewGatewayGraphAdapter wraps g.
func NewGatewayGraphAdapter(g *gateway.Graph) *GatewayGraphAdapter {
	return &GatewayGraphAdapter{g: g}
}

// Neighbors appends the edge targets of node.
func (a *GatewayGraphAdapter) Neighbors(node int, buf []int) []int {
	for _, e := range a.g.Edges(node) {
		buf = append(buf, e.To)
	}

	return buf
}

// Cost returns the edge cost, or 1 if there is no such edge.
func (a *GatewayGraphAdapter) Cost(from, to int) float64 {
	if e := a.g.Edge(from, to); e != nil {
		return float64(e.Cost)
	}

	return 1
}

// Heuristic returns the Manhattan distance between two gateways, 0 if either
// id is unknown.
func (a *GatewayGraphAdapter) Heuristic(node, goal int) float64 {
	n, g := a.g.Gateway(node), a.g.Gateway(goal)
	if n == nil || g == nil {
		return 0
	}

	return float64(abs(n.X-g.X) + abs(n.Y-g.Y))
}

// BoundedAdapter exposes the water tiles of a rectangular window of a grid
// to astar. Tile (x, y) of the window is node (y-minY)*w + (x-minX).
//
// The start and goal tiles may lie outside the window; they then get the
// extra node ids w*h and w*h+1, so a searcher serving a window needs w*h+2
// nodes (see NumNodes).
type BoundedAdapter struct {
	grid          gamemap.Grid
	minX, minY    int
	width, height int
	start, goal   gamemap.TileRef
	tbuf          []gamemap.TileRef
}

// NewBoundedAdapter returns an adapter over the inclusive window
// [minX, maxX] × [minY, maxY] of grid.
func NewBoundedAdapter(grid gamemap.Grid, start, goal gamemap.TileRef, minX, maxX, minY, maxY int) *BoundedAdapter {
	a := &BoundedAdapter{}
	a.reset(grid, start, goal, minX, maxX, minY, maxY)

	return a
}

func (a *BoundedAdapter) reset(grid gamemap.Grid, start, goal gamemap.TileRef, minX, maxX, minY, maxY int) {
	a.grid = grid
	a.start, a.goal = start, goal
	a.minX, a.minY = minX, minY
	a.width = maxX - minX + 1
	a.height = maxY - minY + 1
}

// NumNodes returns the number of node ids the adapter may produce.
func (a *BoundedAdapter) NumNodes() int { return a.width*a.height + 2 }

// TileToNode returns the node id of tile, or -1 if it lies outside the
// window and is neither the start nor the goal.
func (a *BoundedAdapter) TileToNode(tile gamemap.TileRef) int {
	x := a.grid.X(tile) - a.minX
	y := a.grid.Y(tile) - a.minY
	if x >= 0 && x < a.width && y >= 0 && y < a.height {
		return y*a.width + x
	}
	switch tile {
	case a.start:
		return a.width * a.height
	case a.goal:
		return a.width*a.height + 1
	}

	return -1
}

// NodeToTile is the inverse of TileToNode.
func (a *BoundedAdapter) NodeToTile(node int) gamemap.TileRef {
	switch n := a.width * a.height; node {
	case n:
		return a.start
	case n + 1:
		return a.goal
	}

	return a.grid.Ref(node%a.width+a.minX, node/a.width+a.minY)
}

// Neighbors appends the water neighbours of node that map to a node id.
func (a *BoundedAdapter) Neighbors(node int, buf []int) []int {
	a.tbuf = a.grid.Neighbors(a.NodeToTile(node), a.tbuf[:0])
	for _, t := range a.tbuf {
		if !a.grid.IsWater(t) {
			continue
		}
		if n := a.TileToNode(t); n != -1 {
			buf = append(buf, n)
		}
	}

	return buf
}

// Cost is uniform.
func (a *BoundedAdapter) Cost(_, _ int) float64 { return 1 }

// Heuristic returns the Manhattan distance between the two tiles.
func (a *BoundedAdapter) Heuristic(node, goal int) float64 {
	return float64(gamemap.ManhattanDist(a.grid, a.NodeToTile(node), a.NodeToTile(goal)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
