package gateway

import (
	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/water"
)

// Graph is the gateway graph of one mini-map.
type Graph struct {
	sectorSize int
	sectorsX   int
	sectorsY   int
	sectors    []*Sector // by key sy*sectorsX+sx, nil when absent
	order      []*Sector // creation order
	gateways   []*Gateway
	edges      [][]*Edge
	components *water.Components
}

// SectorSize returns the side of a sector in mini tiles.
func (g *Graph) SectorSize() int { return g.sectorSize }

// SectorsX returns the number of sector columns.
func (g *Graph) SectorsX() int { return g.sectorsX }

// SectorsY returns the number of sector rows.
func (g *Graph) SectorsY() int { return g.sectorsY }

// Sector returns the sector at (sx, sy), or nil if it has none.
func (g *Graph) Sector(sx, sy int) *Sector {
	if sx < 0 || sy < 0 || sx >= g.sectorsX || sy >= g.sectorsY {
		return nil
	}

	return g.sectors[sy*g.sectorsX+sx]
}

// Sectors returns the existing sectors in creation order.
func (g *Graph) Sectors() []*Sector { return g.order }

// Gateway returns the gateway with the given id, or nil.
func (g *Graph) Gateway(id int) *Gateway {
	if id < 0 || id >= len(g.gateways) {
		return nil
	}

	return g.gateways[id]
}

// Gateways returns all gateways ordered by id.
func (g *Graph) Gateways() []*Gateway { return g.gateways }

// GatewayCount returns the number of gateways.
func (g *Graph) GatewayCount() int { return len(g.gateways) }

// Edges returns the outgoing edges of a gateway.
func (g *Graph) Edges(id int) []*Edge {
	if id < 0 || id >= len(g.edges) {
		return nil
	}

	return g.edges[id]
}

// Edge returns the edge from → to, or nil.
func (g *Graph) Edge(from, to int) *Edge {
	for _, e := range g.Edges(from) {
		if e.To == to {
			return e
		}
	}

	return nil
}

// EdgeCount returns the number of undirected connections.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}

	return n / 2
}

// NearbySectorGateways returns the gateways of the 3×3 sectors centred on
// (sx, sy). A gateway shared by two of them is listed twice.
func (g *Graph) NearbySectorGateways(sx, sy int) []*Gateway {
	var nearby []*Gateway
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if s := g.Sector(sx+dx, sy+dy); s != nil {
				nearby = append(nearby, s.Gateways...)
			}
		}
	}

	return nearby
}

// ComponentID returns the water component of a mini-map tile (0 for land).
func (g *Graph) ComponentID(tile gamemap.TileRef) uint32 {
	return g.components.ComponentID(tile)
}

// ClearPathCache drops every cached edge path.
func (g *Graph) ClearPathCache() {
	for _, es := range g.edges {
		for _, e := range es {
			e.Path = nil
		}
	}
}
