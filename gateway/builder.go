package gateway

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/bfs"
	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/water"
)

// Builder constructs a Graph from a mini-map. A Builder is single use.
type Builder struct {
	mini       gamemap.Grid
	sectorSize int
	width      int
	height     int
	sectorsX   int
	sectorsY   int
	search     *bfs.Searcher
	components *water.Components
	logger     *zap.Logger

	sectors       []*Sector
	order         []*Sector
	gateways      []*Gateway
	tileToGateway map[gamemap.TileRef]*Gateway
	edges         [][]*Edge

	// scratch for linkSector
	targets   map[gamemap.TileRef]int
	reachable []reach

	debugInfo *BuildDebugInfo
}

type reach struct {
	id   int
	cost int
}

// NewBuilder prepares a build over mini with sectors of sectorSize tiles
// (DefaultSectorSize when sectorSize <= 0).
func NewBuilder(mini gamemap.Grid, sectorSize int, opts ...Option) *Builder {
	if sectorSize <= 0 {
		sectorSize = DefaultSectorSize
	}
	w, h := mini.Width(), mini.Height()
	b := &Builder{
		mini:          mini,
		sectorSize:    sectorSize,
		width:         w,
		height:        h,
		sectorsX:      ceilDiv(w, sectorSize),
		sectorsY:      ceilDiv(h, sectorSize),
		search:        bfs.NewSearcher(w * h),
		components:    water.New(mini),
		logger:        zap.NewNop(),
		tileToGateway: make(map[gamemap.TileRef]*Gateway),
		targets:       make(map[gamemap.TileRef]int),
	}
	b.sectors = make([]*Sector, b.sectorsX*b.sectorsY)
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// DebugInfo returns the counters of the last debug Build, or nil.
func (b *Builder) DebugInfo() *BuildDebugInfo { return b.debugInfo }

// Build runs the whole construction. With debug set it fills DebugInfo and
// logs a summary at debug level.
func (b *Builder) Build(debug bool) *Graph {
	start := time.Now()
	var info *BuildDebugInfo
	if debug {
		info = &BuildDebugInfo{Timings: make(map[string]time.Duration)}
		b.debugInfo = info
		b.logger.Debug("building gateway graph",
			zap.Int("sector_size", b.sectorSize),
			zap.Int("sectors_x", b.sectorsX),
			zap.Int("sectors_y", b.sectorsY))
	}

	phase := time.Now()
	b.components.Initialize()
	if debug {
		info.Timings["water_components"] = time.Since(phase)
	}

	phase = time.Now()
	for sy := 0; sy < b.sectorsY; sy++ {
		for sx := 0; sx < b.sectorsX; sx++ {
			b.scanSector(sx, sy)
		}
	}
	if debug {
		info.Timings["gateways"] = time.Since(phase)
	}

	phase = time.Now()
	for _, sector := range b.order {
		if debug {
			gws := sector.Gateways
			info.PotentialBFSCalls += len(gws) * (len(gws) - 1) / 2
			for i := range gws {
				for j := i + 1; j < len(gws); j++ {
					if gws[i].ComponentID != gws[j].ComponentID {
						info.SkippedByComponentFilter++
					}
				}
			}
		}
		b.linkSector(sector)
	}

	g := &Graph{
		sectorSize: b.sectorSize,
		sectorsX:   b.sectorsX,
		sectorsY:   b.sectorsY,
		sectors:    b.sectors,
		order:      b.order,
		gateways:   b.gateways,
		edges:      b.edges,
		components: b.components,
	}

	if debug {
		info.Timings["edges"] = time.Since(phase)
		info.Timings["total"] = time.Since(start)
		info.ActualBFSCalls = info.PotentialBFSCalls - info.SkippedByComponentFilter
		info.Sectors = len(b.order)
		info.Gateways = len(b.gateways)
		info.Edges = g.EdgeCount()
		info.Components = b.components.Count()
		b.logger.Debug("gateway graph built",
			zap.Int("sectors", info.Sectors),
			zap.Int("gateways", info.Gateways),
			zap.Int("edges", info.Edges),
			zap.Int("water_components", info.Components),
			zap.Int("potential_bfs_calls", info.PotentialBFSCalls),
			zap.Int("skipped_by_component_filter", info.SkippedByComponentFilter),
			zap.Int("actual_bfs_calls", info.ActualBFSCalls),
			zap.Duration("water_components_time", info.Timings["water_components"]),
			zap.Duration("gateways_time", info.Timings["gateways"]),
			zap.Duration("edges_time", info.Timings["edges"]),
			zap.Duration("total_time", info.Timings["total"]))
	}

	return g
}

func (b *Builder) sectorAt(sx, sy int) *Sector {
	key := sy*b.sectorsX + sx
	if s := b.sectors[key]; s != nil {
		return s
	}
	s := &Sector{X: sx, Y: sy}
	b.sectors[key] = s
	b.order = append(b.order, s)

	return s
}

func (b *Builder) gatewayAt(x, y int) *Gateway {
	tile := b.mini.Ref(x, y)
	if gw, ok := b.tileToGateway[tile]; ok {
		return gw
	}
	gw := &Gateway{
		ID:          len(b.gateways),
		X:           x,
		Y:           y,
		Tile:        tile,
		ComponentID: b.components.ComponentID(tile),
	}
	b.gateways = append(b.gateways, gw)
	b.edges = append(b.edges, nil)
	b.tileToGateway[tile] = gw

	return gw
}

// addGateway appends gw to s unless a gateway at the same position is there;
// corner gateways are found by both the vertical and the horizontal scan.
func addGateway(s *Sector, gw *Gateway) {
	for _, existing := range s.Gateways {
		if existing.X == gw.X && existing.Y == gw.Y {
			return
		}
	}
	s.Gateways = append(s.Gateways, gw)
}

// scanSector finds the gateways on the right and bottom border of (sx, sy).
func (b *Builder) scanSector(sx, sy int) {
	sector := b.sectorAt(sx, sy)
	baseX := sx * b.sectorSize
	baseY := sy * b.sectorSize

	if sx < b.sectorsX-1 {
		edgeX := min(baseX+b.sectorSize-1, b.width-1)
		for _, gw := range b.verticalBorder(edgeX, baseY) {
			addGateway(sector, gw)
			addGateway(b.sectorAt(sx+1, sy), gw)
		}
	}

	if sy < b.sectorsY-1 {
		edgeY := min(baseY+b.sectorSize-1, b.height-1)
		for _, gw := range b.horizontalBorder(edgeY, baseX) {
			addGateway(sector, gw)
			addGateway(b.sectorAt(sx, sy+1), gw)
		}
	}
}

// verticalBorder returns one gateway per run of rows y in [baseY, baseY+S)
// where both (x, y) and (x+1, y) are water.
func (b *Builder) verticalBorder(x, baseY int) []*Gateway {
	var found []*Gateway
	maxY := min(baseY+b.sectorSize, b.height)
	runStart := -1
	closeRun := func(end int) {
		if runStart == -1 {
			return
		}
		mid := runStart + (end-runStart)/2
		runStart = -1
		found = append(found, b.gatewayAt(x, mid))
	}

	for y := baseY; y < maxY; y++ {
		crossing := x+1 < b.width &&
			b.mini.IsWater(b.mini.Ref(x, y)) &&
			b.mini.IsWater(b.mini.Ref(x+1, y))
		if crossing {
			if runStart == -1 {
				runStart = y
			}
			continue
		}
		closeRun(y)
	}
	closeRun(maxY)

	return found
}

// horizontalBorder is verticalBorder for the border between rows y and y+1.
func (b *Builder) horizontalBorder(y, baseX int) []*Gateway {
	var found []*Gateway
	maxX := min(baseX+b.sectorSize, b.width)
	runStart := -1
	closeRun := func(end int) {
		if runStart == -1 {
			return
		}
		mid := runStart + (end-runStart)/2
		runStart = -1
		found = append(found, b.gatewayAt(mid, y))
	}

	for x := baseX; x < maxX; x++ {
		crossing := y+1 < b.height &&
			b.mini.IsWater(b.mini.Ref(x, y)) &&
			b.mini.IsWater(b.mini.Ref(x, y+1))
		if crossing {
			if runStart == -1 {
				runStart = x
			}
			continue
		}
		closeRun(x)
	}
	closeRun(maxX)

	return found
}

// linkSector creates the edges between the gateways of one sector.
func (b *Builder) linkSector(sector *Sector) {
	gws := sector.Gateways
	minX := sector.X * b.sectorSize
	minY := sector.Y * b.sectorSize
	maxX := min(b.width-1, minX+b.sectorSize-1)
	maxY := min(b.height-1, minY+b.sectorSize-1)

	var targets []*Gateway
	for i, from := range gws {
		targets = targets[:0]
		for _, to := range gws[i+1:] {
			if to.ComponentID == from.ComponentID {
				targets = append(targets, to)
			}
		}
		if len(targets) == 0 {
			continue
		}

		for _, r := range b.reachableInBounds(from, targets, minX, maxX, minY, maxY) {
			b.connect(sector, from.ID, r.id, r.cost)
		}
	}
}

// connect records the pair (a, b) unless an edge at least as cheap exists.
func (b *Builder) connect(sector *Sector, a, c, cost int) {
	existingAC, idxAC := findEdge(b.edges[a], c)
	if existingAC != nil && cost >= existingAC.Cost {
		return
	}
	ac := &Edge{From: a, To: c, Cost: cost, SectorX: sector.X, SectorY: sector.Y}
	ca := &Edge{From: c, To: a, Cost: cost, SectorX: sector.X, SectorY: sector.Y}
	sector.Edges = append(sector.Edges, ac, ca)

	if existingAC != nil {
		b.edges[a][idxAC] = ac
		if _, idxCA := findEdge(b.edges[c], a); idxCA >= 0 {
			b.edges[c][idxCA] = ca
		}
		return
	}
	b.edges[a] = append(b.edges[a], ac)
	b.edges[c] = append(b.edges[c], ca)
}

func findEdge(edges []*Edge, to int) (*Edge, int) {
	for i, e := range edges {
		if e.To == to {
			return e, i
		}
	}

	return nil, -1
}

// reachableInBounds runs one BFS from `from` and returns the targets it
// reaches inside the box, in discovery order, with their distances.
func (b *Builder) reachableInBounds(from *Gateway, targets []*Gateway, minX, maxX, minY, maxY int) []reach {
	clear(b.targets)
	maxManhattan := 0
	for _, gw := range targets {
		b.targets[gw.Tile] = gw.ID
		maxManhattan = max(maxManhattan, abs(gw.X-from.X)+abs(gw.Y-from.Y))
	}

	b.reachable = b.reachable[:0]
	mini := b.mini
	bfs.Search(b.search, b.width, b.height, int(from.Tile), maxManhattan*distanceSlack,
		func(n int) bool { return mini.IsWater(gamemap.TileRef(n)) },
		func(n, dist int) (struct{}, bfs.Verdict) {
			tile := gamemap.TileRef(n)
			id, isTarget := b.targets[tile]
			if !isTarget && tile != from.Tile {
				x, y := mini.X(tile), mini.Y(tile)
				if x < minX || x > maxX || y < minY || y > maxY {
					return struct{}{}, bfs.Reject
				}
			}
			if isTarget {
				b.reachable = append(b.reachable, reach{id: id, cost: dist})
				if len(b.reachable) == len(targets) {
					return struct{}{}, bfs.Stop
				}
			}
			return struct{}{}, bfs.Expand
		})

	return b.reachable
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
