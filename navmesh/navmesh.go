package navmesh

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/astar"
	"github.com/katalvlaran/navsat/bfs"
	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/gateway"
)

// NavMesh is the hierarchical water path finder of one map.
type NavMesh struct {
	full gamemap.Grid
	mini gamemap.Grid
	opts options

	graph       *gateway.Graph
	buildInfo   *gateway.BuildDebugInfo
	initialized bool

	bfs          *bfs.Searcher
	gatewayAStar *astar.Searcher
	localAStar   *astar.Searcher // one sector
	wideAStar    *astar.Searcher // 3×3 sectors
	gateways     *GatewayGraphAdapter
	local        BoundedAdapter
	isWater      bfs.IsValidFunc

	miniBuf []gamemap.TileRef
	traceA  []gamemap.TileRef
	traceB  []gamemap.TileRef
}

// New returns an uninitialized NavMesh over full and its mini-map.
func New(full, mini gamemap.Grid, opts ...Option) *NavMesh {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sectorSize <= 0 {
		o.sectorSize = gateway.DefaultSectorSize
	}

	return &NavMesh{full: full, mini: mini, opts: o}
}

// Initialize builds the gateway graph and sizes the search buffers.
func (n *NavMesh) Initialize() {
	start := time.Now()
	b := gateway.NewBuilder(n.mini, n.opts.sectorSize, gateway.WithLogger(n.opts.logger))
	n.graph = b.Build(n.opts.debug)
	n.buildInfo = b.DebugInfo()

	s := n.graph.SectorSize()
	mini := n.mini
	n.bfs = bfs.NewSearcher(mini.Width() * mini.Height())
	n.gatewayAStar = astar.NewSearcher(n.graph.GatewayCount())
	n.localAStar = astar.NewSearcher(s*s + 2)
	n.wideAStar = astar.NewSearcher(9*s*s + 2)
	n.gateways = NewGatewayGraphAdapter(n.graph)
	n.isWater = func(node int) bool { return mini.IsWater(gamemap.TileRef(node)) }
	n.initialized = true

	n.opts.logger.Debug("navmesh initialized",
		zap.Int("width", n.full.Width()),
		zap.Int("height", n.full.Height()),
		zap.Int("gateways", n.graph.GatewayCount()),
		zap.Int("edges", n.graph.EdgeCount()),
		zap.Duration("elapsed", time.Since(start)))
}

// Initialized reports whether Initialize has run.
func (n *NavMesh) Initialized() bool { return n.initialized }

// Graph returns the gateway graph, nil before Initialize.
func (n *NavMesh) Graph() *gateway.Graph { return n.graph }

// BuildInfo returns the gateway build statistics when WithDebug was set.
func (n *NavMesh) BuildInfo() *gateway.BuildDebugInfo { return n.buildInfo }

// FindPath returns a water path over the full map from from to to, both
// included, or nil if there is none or the NavMesh is not initialized.
func (n *NavMesh) FindPath(from, to gamemap.TileRef) []gamemap.TileRef {
	return n.findPath(from, to, nil)
}

// FindPathDebug is FindPath that also reports intermediate results and
// per-phase timings, and logs the query at debug level.
func (n *NavMesh) FindPathDebug(from, to gamemap.TileRef) ([]gamemap.TileRef, *PathDebugInfo) {
	if !n.initialized {
		return nil, nil
	}
	info := &PathDebugInfo{
		Graph:   n.Snapshot(),
		Timings: map[string]time.Duration{"total": 0},
	}

	return n.findPath(from, to, info), info
}

// phase records the time since start under key and adds it to the total.
func (info *PathDebugInfo) phase(key string, start time.Time) {
	if info == nil {
		return
	}
	d := time.Since(start)
	info.Timings[key] = d
	info.Timings["total"] += d
}

func (n *NavMesh) findPath(from, to gamemap.TileRef, info *PathDebugInfo) []gamemap.TileRef {
	if !n.initialized || !n.full.IsValidRef(from) || !n.full.IsValidRef(to) {
		return nil
	}
	log := n.opts.logger
	s := n.graph.SectorSize()

	if dist := gamemap.ManhattanDist(n.full, from, to); dist <= s {
		t := time.Now()
		sx, sy := n.sectorOf(from)
		path := n.localPath(from, to, sx, sy, n.opts.earlyExitIterations, true)
		info.phase("earlyExitLocalPath", t)
		if path != nil {
			if info != nil {
				log.Debug("direct local path", zap.Int("dist", dist), zap.Int("length", len(path)))
			}
			return path
		}
		if info != nil {
			log.Debug("direct local path failed, using gateway graph", zap.Int("dist", dist))
		}
	}

	t := time.Now()
	startGw := n.nearestGateway(from)
	endGw := n.nearestGateway(to)
	info.phase("findGateways", t)
	if startGw == nil || endGw == nil {
		if info != nil {
			log.Debug("no gateway for endpoint",
				zap.Bool("start", startGw != nil), zap.Bool("end", endGw != nil))
		}
		return nil
	}

	if startGw.ID == endGw.ID {
		t = time.Now()
		path := n.localPath(from, to, startGw.X/s, startGw.Y/s, n.opts.localIterations, true)
		info.phase("sameGatewayLocalPath", t)
		if info != nil {
			log.Debug("shared gateway, local path", zap.Int("gateway", startGw.ID), zap.Bool("found", path != nil))
		}
		return path
	}

	t = time.Now()
	gwPath := n.gatewayAStar.Search(startGw.ID, endGw.ID, n.gateways, n.opts.gatewayIterations)
	info.phase("findGatewayPath", t)
	if info != nil && gwPath != nil {
		info.GatewayPath = make([]gamemap.TileRef, len(gwPath))
		for i, id := range gwPath {
			info.GatewayPath[i] = n.graph.Gateway(id).Tile
		}
	}
	if gwPath == nil {
		if info != nil {
			log.Debug("no gateway path", zap.Int("from", startGw.ID), zap.Int("to", endGw.ID))
		}
		return nil
	}

	t = time.Now()
	path := n.stitch(from, to, gwPath)
	if path == nil {
		return nil
	}
	info.phase("buildInitialPath", t)

	t = time.Now()
	smoothed := n.smoothPath(path)
	info.phase("buildSmoothPath", t)
	if info != nil {
		info.InitialPath = path
		info.SmoothPath = smoothed
		log.Debug("path found",
			zap.Int("gateways", len(gwPath)),
			zap.Int("initial_length", len(path)),
			zap.Int("smoothed_length", len(smoothed)),
			zap.Duration("total", info.Timings["total"]))
	}

	return smoothed
}

// stitch joins the start segment, one segment per gateway edge and the end
// segment, dropping the duplicate tile at each join.
func (n *NavMesh) stitch(from, to gamemap.TileRef, gwPath []int) []gamemap.TileRef {
	it := n.opts.localIterations
	first := n.graph.Gateway(gwPath[0])
	sx, sy := n.sectorOf(from)
	path := n.localPath(from, n.fullTile(first), sx, sy, it, false)
	if path == nil {
		return nil
	}

	for i := 0; i < len(gwPath)-1; i++ {
		e := n.graph.Edge(gwPath[i], gwPath[i+1])
		if e == nil {
			return nil
		}
		if e.Path != nil {
			path = append(path, e.Path[1:]...)
			continue
		}

		a, b := n.graph.Gateway(e.From), n.graph.Gateway(e.To)
		seg := n.localPath(n.fullTile(a), n.fullTile(b), e.SectorX, e.SectorY, it, false)
		if seg == nil {
			return nil
		}
		path = append(path, seg[1:]...)

		if n.opts.cachePaths {
			e.Path = seg
			if rev := n.graph.Edge(e.To, e.From); rev != nil {
				rev.Path = reversed(seg)
			}
		}
	}

	last := n.graph.Gateway(gwPath[len(gwPath)-1])
	sx, sy = n.sectorOf(to)
	end := n.localPath(n.fullTile(last), to, sx, sy, it, false)
	if end == nil {
		return nil
	}

	return append(path, end[1:]...)
}

// nearestGateway returns the gateway of tile's own sector closest to it by
// water, or nil.
func (n *NavMesh) nearestGateway(tile gamemap.TileRef) *gateway.Gateway {
	mini := n.mini
	mx, my := n.full.X(tile)/2, n.full.Y(tile)/2
	s := n.graph.SectorSize()
	sector := n.graph.Sector(mx/s, my/s)
	if sector == nil || len(sector.Gateways) == 0 {
		return nil
	}
	candidates := sector.Gateways

	minX, minY := sector.X*s, sector.Y*s
	maxX := min(mini.Width()-1, minX+s-1)
	maxY := min(mini.Height()-1, minY+s-1)

	gw, _ := bfs.Search(n.bfs, mini.Width(), mini.Height(), int(mini.Ref(mx, my)), s*s, n.isWater,
		func(node, _ int) (*gateway.Gateway, bfs.Verdict) {
			t := gamemap.TileRef(node)
			x, y := mini.X(t), mini.Y(t)
			for _, c := range candidates {
				if c.X == x && c.Y == y {
					return c, bfs.Stop
				}
			}
			if x < minX || x > maxX || y < minY || y > maxY {
				return nil, bfs.Reject
			}
			return nil, bfs.Expand
		})

	return gw
}

// localPath runs A* on the mini-map inside one sector (or the 3×3 sectors
// around it when wide is set) and upscales the result so that it starts at
// from and ends at to.
func (n *NavMesh) localPath(from, to gamemap.TileRef, sx, sy, iterations int, wide bool) []gamemap.TileRef {
	mini := n.mini
	miniFrom := mini.Ref(n.full.X(from)/2, n.full.Y(from)/2)
	miniTo := mini.Ref(n.full.X(to)/2, n.full.Y(to)/2)

	s := n.graph.SectorSize()
	var minX, minY, maxX, maxY int
	search := n.localAStar
	if wide {
		minX = max(0, (sx-1)*s)
		minY = max(0, (sy-1)*s)
		maxX = min(mini.Width()-1, (sx+2)*s-1)
		maxY = min(mini.Height()-1, (sy+2)*s-1)
		search = n.wideAStar
	} else {
		minX, minY = sx*s, sy*s
		maxX = min(mini.Width()-1, minX+s-1)
		maxY = min(mini.Height()-1, minY+s-1)
	}

	a := &n.local
	a.reset(mini, miniFrom, miniTo, minX, maxX, minY, maxY)
	startNode, goalNode := a.TileToNode(miniFrom), a.TileToNode(miniTo)
	if startNode == -1 || goalNode == -1 {
		return nil
	}

	nodes := search.Search(startNode, goalNode, a, iterations)
	if nodes == nil {
		return nil
	}
	miniPath := n.miniBuf[:0]
	for _, node := range nodes {
		miniPath = append(miniPath, a.NodeToTile(node))
	}
	n.miniBuf = miniPath

	return gamemap.UpscalePath(n.full, mini, miniPath, from, to)
}

// sectorOf returns the sector holding the mini tile of a full-map tile.
func (n *NavMesh) sectorOf(tile gamemap.TileRef) (int, int) {
	s := n.graph.SectorSize()

	return n.full.X(tile) / 2 / s, n.full.Y(tile) / 2 / s
}

// fullTile maps a gateway to the top-left full-map tile of its mini tile.
func (n *NavMesh) fullTile(gw *gateway.Gateway) gamemap.TileRef {
	return n.full.Ref(gw.X*2, gw.Y*2)
}

// Snapshot copies the gateway graph topology. Edges are listed once per
// pair. It is empty before Initialize.
func (n *NavMesh) Snapshot() GraphSnapshot {
	g := n.graph
	if g == nil {
		return GraphSnapshot{}
	}
	snap := GraphSnapshot{
		SectorSize: g.SectorSize(),
		Gateways:   make([]GatewaySnapshot, 0, g.GatewayCount()),
		Edges:      make([]EdgeSnapshot, 0, g.EdgeCount()),
	}
	for _, gw := range g.Gateways() {
		snap.Gateways = append(snap.Gateways, GatewaySnapshot{ID: gw.ID, Tile: gw.Tile})
		for _, e := range g.Edges(gw.ID) {
			if e.From > e.To {
				continue
			}
			snap.Edges = append(snap.Edges, EdgeSnapshot{
				FromID: e.From,
				ToID:   e.To,
				From:   gw.Tile,
				To:     g.Gateway(e.To).Tile,
				Cost:   e.Cost,
				Path:   e.Path,
			})
		}
	}

	return snap
}

func reversed(p []gamemap.TileRef) []gamemap.TileRef {
	out := make([]gamemap.TileRef, len(p))
	for i, t := range p {
		out[len(p)-1-i] = t
	}

	return out
}
