package playground

import (
	"errors"
	"strings"
	"unicode"
)

// Request errors; each maps to an HTTP status in statusOf.
var (
	ErrBadRequest = errors.New("playground: invalid request")
	ErrNotWater   = errors.New("playground: endpoint is not water")
	ErrUnknownMap = errors.New("playground: unknown map")
)

// PathRequest is the body of POST /api/pathfind and of every /ws message.
type PathRequest struct {
	Map  string `json:"map" jsonschema:"required,description=map directory name"`
	From []int  `json:"from" jsonschema:"required,minItems=2,maxItems=2,description=start tile as an x/y pair"`
	To   []int  `json:"to" jsonschema:"required,minItems=2,maxItems=2,description=destination tile as an x/y pair"`
	// Adapter defaults to hpa.cached, or legacy for worlds built without a NavMesh.
	Adapter string `json:"adapter,omitempty" jsonschema:"enum=hpa.cached,enum=hpa,enum=legacy"`
	Debug   bool   `json:"debug,omitempty" jsonschema:"description=attach NavMesh debug info"`
}

// PathResponse answers a PathRequest. Path is null when no route exists.
type PathResponse struct {
	Path    [][2]int       `json:"path"`
	Length  int            `json:"length"`
	TimeMS  float64        `json:"time_ms"`
	Adapter string         `json:"adapter"`
	Debug   *DebugResponse `json:"debug,omitempty"`
}

// DebugResponse is navmesh.PathDebugInfo in full-map coordinates.
type DebugResponse struct {
	// Gateways are the crossed gateways scaled to the full map.
	Gateways    [][2]int           `json:"gateways"`
	InitialPath [][2]int           `json:"initialPath"`
	Timings     map[string]float64 `json:"timings"` // milliseconds per phase
}

// MapEntry is one item of GET /api/maps.
type MapEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// MapList is the body of GET /api/maps.
type MapList struct {
	Maps []MapEntry `json:"maps"`
}

// MapMetadata is the body of GET /api/maps/{name}.
type MapMetadata struct {
	Name         string `json:"name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	NumLandTiles int    `json:"num_land_tiles"`
	// MapData has one character per tile, row-major: '1' water, '0' land.
	MapData    string     `json:"mapData"`
	GraphDebug GraphDebug `json:"graphDebug"`
}

// GraphDebug is the gateway graph in full-map coordinates.
type GraphDebug struct {
	SectorSize  int           `json:"sectorSize"`
	AllGateways []GatewayInfo `json:"allGateways"`
	Edges       []EdgeInfo    `json:"edges"`
}

// GatewayInfo is a gateway at its mini-map coordinates.
type GatewayInfo struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// EdgeInfo is one undirected gateway edge. Path is null until the edge
// path has been cached by a query.
type EdgeInfo struct {
	FromID int      `json:"fromId"`
	ToID   int      `json:"toId"`
	From   [2]int   `json:"from"`
	To     [2]int   `json:"to"`
	Cost   int      `json:"cost"`
	Path   [][2]int `json:"path"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// displayName turns a directory name such as "north_america" or
// "blackSea" into "North America" and "Black Sea".
func displayName(name string) string {
	var b strings.Builder
	prev := ' '
	for _, r := range name {
		if r == '_' || r == '-' {
			r = ' '
		}
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteRune(' ')
			prev = ' '
		}
		if prev == ' ' || prev == '(' {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prev = r
	}

	return b.String()
}
