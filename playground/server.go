package playground

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
	"github.com/katalvlaran/navsat/pathfinder"
	"github.com/katalvlaran/navsat/scenario"
	"github.com/katalvlaran/navsat/world"
)

// maxBodyBytes bounds request bodies and websocket messages.
const maxBodyBytes = 1 << 16

// Server is the playground HTTP handler.
type Server struct {
	mapsDir  string
	logger   *zap.Logger
	navMesh  bool
	meshOpts []navmesh.Option
	legacy   pathfinder.Options

	mu     sync.Mutex
	worlds map[string]*entry

	upgrader websocket.Upgrader
	handler  http.Handler
}

// entry is one cached world. mu serializes loading and every query.
type entry struct {
	mu      sync.Mutex
	world   *world.World
	finders map[string]pathfinder.PathFinder
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and load logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNavMesh controls whether loaded worlds build a NavMesh (default true).
func WithNavMesh(on bool) Option {
	return func(s *Server) { s.navMesh = on }
}

// WithNavMeshOptions sets the options of every NavMesh the server builds.
func WithNavMeshOptions(opts ...navmesh.Option) Option {
	return func(s *Server) { s.meshOpts = append(s.meshOpts, opts...) }
}

// WithLegacyOptions sets the options of the legacy adapter.
func WithLegacyOptions(o pathfinder.Options) Option {
	return func(s *Server) { s.legacy = o }
}

// New returns a Server for the map directories under mapsDir.
func New(mapsDir string, opts ...Option) *Server {
	s := &Server{
		mapsDir: mapsDir,
		logger:  zap.NewNop(),
		navMesh: true,
		worlds:  make(map[string]*entry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/maps", s.handleMaps)
	mux.HandleFunc("GET /api/maps/{name}", s.handleMap)
	mux.HandleFunc("POST /api/pathfind", s.handlePathfind)
	mux.HandleFunc("POST /api/cache/clear", s.handleClear)
	mux.HandleFunc("GET /api/schema", s.handleSchema)
	mux.HandleFunc("GET /ws", s.handleWS)
	s.handler = s.accessLog(mux)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ClearCache drops every loaded world. Queries in flight keep theirs.
func (s *Server) ClearCache() {
	s.mu.Lock()
	n := len(s.worlds)
	s.worlds = make(map[string]*entry)
	s.mu.Unlock()
	s.logger.Info("world cache cleared", zap.Int("worlds", n))
}

// withWorld runs fn with the named world loaded and its entry locked.
func (s *Server) withWorld(name string, fn func(e *entry) error) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	s.mu.Lock()
	e, ok := s.worlds[name]
	if !ok {
		e = &entry{finders: make(map[string]pathfinder.PathFinder)}
		s.worlds[name] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.world == nil {
		w, err := world.Load(filepath.Join(s.mapsDir, name),
			world.WithLogger(s.logger),
			world.WithNavMesh(s.navMesh),
			world.WithNavMeshOptions(s.meshOpts...))
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrUnknownMap, name)
		}
		if err != nil {
			return err
		}
		e.world = w
	}

	return fn(e)
}

// finder returns the cached PathFinder of the named adapter.
func (s *Server) finder(e *entry, name string) (pathfinder.PathFinder, error) {
	if pf, ok := e.finders[name]; ok {
		return pf, nil
	}
	pf, err := scenario.Adapter(name, e.world, s.legacy, s.meshOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: adapter %q: %w", ErrBadRequest, name, err)
	}
	e.finders[name] = pf

	return pf, nil
}

// Pathfind answers one request.
func (s *Server) Pathfind(req PathRequest) (*PathResponse, error) {
	if req.Map == "" || req.From == nil || req.To == nil {
		return nil, fmt.Errorf("%w: missing required fields: map, from, to", ErrBadRequest)
	}
	if len(req.From) != 2 || len(req.To) != 2 {
		return nil, fmt.Errorf("%w: from and to must be [x, y] coordinate arrays", ErrBadRequest)
	}

	var resp *PathResponse
	err := s.withWorld(req.Map, func(e *entry) error {
		m := e.world.Full()
		from, err := waterTile(m, "start", req.From)
		if err != nil {
			return err
		}
		to, err := waterTile(m, "end", req.To)
		if err != nil {
			return err
		}

		adapter := req.Adapter
		if adapter == "" {
			adapter = "hpa.cached"
			if e.world.NavMesh() == nil {
				adapter = "legacy"
			}
		}

		var (
			path  []gamemap.TileRef
			info  *navmesh.PathDebugInfo
			start = time.Now()
		)
		if req.Debug && adapter == "hpa.cached" && e.world.NavMesh() != nil {
			path, info = e.world.NavMesh().FindPathDebug(from, to)
		} else {
			pf, err := s.finder(e, adapter)
			if err != nil {
				return err
			}
			path = pf.FindPath(from, to)
		}
		elapsed := time.Since(start)

		resp = &PathResponse{
			Path:    coords(m, path),
			Length:  len(path),
			TimeMS:  millis(elapsed),
			Adapter: adapter,
			Debug:   debugResponse(e.world, info),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Metadata describes the named map and its gateway graph.
func (s *Server) Metadata(name string) (*MapMetadata, error) {
	var md *MapMetadata
	err := s.withWorld(name, func(e *entry) error {
		full, mini := e.world.Full(), e.world.Mini()
		data := make([]byte, full.NumTiles())
		for t := range data {
			data[t] = '0'
			if full.IsWater(gamemap.TileRef(t)) {
				data[t] = '1'
			}
		}
		md = &MapMetadata{
			Name:         e.world.Name(),
			Width:        full.Width(),
			Height:       full.Height(),
			NumLandTiles: full.NumLandTiles(),
			MapData:      string(data),
		}
		if e.world.NavMesh() == nil {
			return nil
		}

		snap := e.world.NavMesh().Snapshot()
		md.GraphDebug.SectorSize = snap.SectorSize
		md.GraphDebug.AllGateways = make([]GatewayInfo, 0, len(snap.Gateways))
		for _, gw := range snap.Gateways {
			md.GraphDebug.AllGateways = append(md.GraphDebug.AllGateways,
				GatewayInfo{ID: gw.ID, X: mini.X(gw.Tile), Y: mini.Y(gw.Tile)})
		}
		md.GraphDebug.Edges = make([]EdgeInfo, 0, len(snap.Edges))
		for _, ed := range snap.Edges {
			md.GraphDebug.Edges = append(md.GraphDebug.Edges, EdgeInfo{
				FromID: ed.FromID,
				ToID:   ed.ToID,
				From:   [2]int{mini.X(ed.From) * 2, mini.Y(ed.From) * 2},
				To:     [2]int{mini.X(ed.To) * 2, mini.Y(ed.To) * 2},
				Cost:   ed.Cost,
				Path:   coords(full, ed.Path),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return md, nil
}

func (s *Server) handleMaps(w http.ResponseWriter, r *http.Request) {
	names, err := gamemap.ListDir(s.mapsDir)
	if err != nil {
		s.writeError(w, err)
		return
	}
	list := MapList{Maps: make([]MapEntry, 0, len(names))}
	for _, name := range names {
		display := name
		if mf, err := gamemap.ReadManifest(filepath.Join(s.mapsDir, name)); err == nil {
			display = mf.Name
		}
		list.Maps = append(list.Maps, MapEntry{Name: name, DisplayName: displayName(display)})
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	md, err := s.Metadata(r.PathValue("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, md)
}

func (s *Server) handlePathfind(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	resp, err := s.Pathfind(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.ClearCache()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Caches cleared successfully"})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Schema())
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse(err))
}

// statusOf maps request errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrNotWater):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownMap):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(err error) ErrorResponse {
	title := "Internal server error"
	switch statusOf(err) {
	case http.StatusBadRequest:
		title = "Invalid request"
	case http.StatusNotFound:
		title = "Map not found"
	}

	return ErrorResponse{Error: title, Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// waterTile validates an [x, y] pair against m.
func waterTile(m *gamemap.Map, which string, xy []int) (gamemap.TileRef, error) {
	x, y := xy[0], xy[1]
	if !m.InBounds(x, y) {
		return gamemap.InvalidTile, fmt.Errorf("%w: %s point (%d, %d) is outside the map", ErrBadRequest, which, x, y)
	}
	t := m.Ref(x, y)
	if !m.IsWater(t) {
		return gamemap.InvalidTile, fmt.Errorf("%w: %s point (%d, %d)", ErrNotWater, which, x, y)
	}

	return t, nil
}

func coords(g gamemap.Grid, path []gamemap.TileRef) [][2]int {
	if path == nil {
		return nil
	}
	out := make([][2]int, len(path))
	for i, t := range path {
		out[i] = [2]int{g.X(t), g.Y(t)}
	}

	return out
}

func debugResponse(w *world.World, info *navmesh.PathDebugInfo) *DebugResponse {
	if info == nil {
		return nil
	}
	mini := w.Mini()
	d := &DebugResponse{
		InitialPath: coords(w.Full(), info.InitialPath),
		Timings:     make(map[string]float64, len(info.Timings)),
	}
	if info.GatewayPath != nil {
		d.Gateways = make([][2]int, len(info.GatewayPath))
		for i, t := range info.GatewayPath {
			d.Gateways[i] = [2]int{mini.X(t) * 2, mini.Y(t) * 2}
		}
	}
	for k, v := range info.Timings {
		d.Timings[k] = millis(v)
	}

	return d
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
