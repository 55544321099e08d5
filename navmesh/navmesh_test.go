package navmesh_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
)

// sea returns w×h rows of water with the inclusive rectangles in land
// ({x0, y0, x1, y1}) turned to land.
func sea(w, h int, land ...[4]int) []string {
	rows := make([]string, h)
	for y := range rows {
		b := []byte(strings.Repeat("W", w))
		for _, r := range land {
			if y >= r[1] && y <= r[3] {
				for x := r[0]; x <= r[2]; x++ {
					b[x] = 'L'
				}
			}
		}
		rows[y] = string(b)
	}

	return rows
}

func newMesh(t testing.TB, rows []string, opts ...navmesh.Option) (*gamemap.Map, *navmesh.NavMesh) {
	t.Helper()
	full, err := gamemap.FromRows(rows)
	require.NoError(t, err)
	n := navmesh.New(full, gamemap.Downscale(full), opts...)
	n.Initialize()
	require.True(t, n.Initialized())

	return full, n
}

// requireWaterPath checks endpoints, 8-adjacency of consecutive tiles and
// that every tile is water.
func requireWaterPath(t *testing.T, m *gamemap.Map, p []gamemap.TileRef, from, to gamemap.TileRef) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, from, p[0], "first tile")
	assert.Equal(t, to, p[len(p)-1], "last tile")
	for i, tile := range p {
		require.True(t, m.IsWater(tile), "tile %d (%d,%d) is land", i, m.X(tile), m.Y(tile))
		if i == 0 {
			continue
		}
		prev := p[i-1]
		dx, dy := m.X(tile)-m.X(prev), m.Y(tile)-m.Y(prev)
		require.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1,
			"gap between (%d,%d) and (%d,%d)", m.X(prev), m.Y(prev), m.X(tile), m.Y(tile))
	}
}

func TestFindPath_Straight(t *testing.T) {
	m, n := newMesh(t, []string{"WWWW"})
	assert.Equal(t, []gamemap.TileRef{0, 1, 2, 3}, n.FindPath(m.Ref(0, 0), m.Ref(3, 0)))
}

func TestFindPath_Blocked(t *testing.T) {
	m, n := newMesh(t, []string{"WWLLWW"})
	assert.Nil(t, n.FindPath(m.Ref(0, 0), m.Ref(5, 0)))
}

// The mini-map marks a 2×2 block as water if any tile is water, so these
// full-resolution land crossings stay passable.
func TestFindPath_MiniMapCoarseness(t *testing.T) {
	m, n := newMesh(t, []string{"WLLWLWWLLW"})
	p := n.FindPath(m.Ref(0, 0), m.Ref(9, 0))
	require.NotNil(t, p)
	assert.Equal(t, []gamemap.TileRef{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p)

	m, n = newMesh(t, []string{"WL", "LW"})
	assert.Equal(t, []gamemap.TileRef{m.Ref(0, 0), m.Ref(1, 1)}, n.FindPath(m.Ref(0, 0), m.Ref(1, 1)))
}

func TestFindPath_SameTile(t *testing.T) {
	m, n := newMesh(t, sea(8, 8))
	for _, tile := range []gamemap.TileRef{m.Ref(0, 0), m.Ref(3, 5), m.Ref(7, 7)} {
		assert.Equal(t, []gamemap.TileRef{tile}, n.FindPath(tile, tile))
	}
}

func TestFindPath_InvalidOrUninitialized(t *testing.T) {
	full, err := gamemap.FromRows(sea(4, 4))
	require.NoError(t, err)
	n := navmesh.New(full, gamemap.Downscale(full))
	assert.False(t, n.Initialized())
	assert.Nil(t, n.Graph())
	assert.Nil(t, n.FindPath(0, 5))
	p, info := n.FindPathDebug(0, 5)
	assert.Nil(t, p)
	assert.Nil(t, info)

	n.Initialize()
	assert.Nil(t, n.FindPath(-1, 5))
	assert.Nil(t, n.FindPath(0, 16))
}

func TestFindPath_GatewayRoute(t *testing.T) {
	cases := []struct {
		name     string
		rows     []string
		from, to [2]int
	}{
		{"open sea", sea(16, 16), [2]int{0, 0}, [2]int{15, 15}},
		{"open sea reverse", sea(16, 16), [2]int{15, 0}, [2]int{1, 14}},
		{"around island", sea(32, 32, [4]int{8, 8, 23, 23}), [2]int{0, 0}, [2]int{31, 31}},
		{"around island diagonal", sea(32, 32, [4]int{8, 8, 23, 23}), [2]int{31, 0}, [2]int{0, 31}},
		{"odd size", sea(31, 29, [4]int{8, 8, 23, 23}), [2]int{0, 28}, [2]int{30, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, n := newMesh(t, tc.rows, navmesh.WithSectorSize(4))
			from, to := m.Ref(tc.from[0], tc.from[1]), m.Ref(tc.to[0], tc.to[1])
			requireWaterPath(t, m, n.FindPath(from, to), from, to)
		})
	}
}

func TestFindPath_SharedGateway(t *testing.T) {
	m, n := newMesh(t, sea(16, 8), navmesh.WithSectorSize(4))
	require.Equal(t, 1, n.Graph().GatewayCount())

	from, to := m.Ref(0, 0), m.Ref(15, 7)
	p, info := n.FindPathDebug(from, to)
	requireWaterPath(t, m, p, from, to)
	assert.Contains(t, info.Timings, "sameGatewayLocalPath")
	assert.NotContains(t, info.Timings, "findGatewayPath")
	assert.Nil(t, info.GatewayPath)
}

func TestFindPath_Components(t *testing.T) {
	// mini column 5 is land: two lakes, one gateway each side of it
	rows := sea(24, 8, [4]int{10, 0, 11, 7})
	m, n := newMesh(t, rows, navmesh.WithSectorSize(4))

	assert.Nil(t, n.FindPath(m.Ref(0, 0), m.Ref(23, 7)), "different lakes")
	assert.Nil(t, n.FindPath(m.Ref(23, 7), m.Ref(0, 0)), "different lakes")

	from, to := m.Ref(0, 0), m.Ref(9, 7)
	requireWaterPath(t, m, n.FindPath(from, to), from, to)
}

func TestFindPath_NoGatewayInSector(t *testing.T) {
	// one sector, endpoints too far apart for the early exit
	m, n := newMesh(t, sea(32, 32, [4]int{8, 8, 23, 23}), navmesh.WithSectorSize(16))
	require.Zero(t, n.Graph().GatewayCount())
	assert.Nil(t, n.FindPath(m.Ref(0, 0), m.Ref(31, 31)))
}

func TestFindPath_EdgeCache(t *testing.T) {
	for _, cache := range []bool{true, false} {
		m, n := newMesh(t, sea(16, 16), navmesh.WithSectorSize(4), navmesh.WithCachePaths(cache))
		from, to := m.Ref(0, 0), m.Ref(15, 15)
		first := n.FindPath(from, to)
		require.NotNil(t, first)

		g := n.Graph()
		cached := 0
		for _, gw := range g.Gateways() {
			for _, e := range g.Edges(gw.ID) {
				if e.Path == nil {
					continue
				}
				cached++
				rev := g.Edge(e.To, e.From)
				require.NotNil(t, rev)
				require.Len(t, rev.Path, len(e.Path))
				assert.Equal(t, e.Path[0], rev.Path[len(rev.Path)-1])
				assert.Equal(t, m.Ref(gw.X*2, gw.Y*2), e.Path[0])
			}
		}
		if !cache {
			assert.Zero(t, cached)
			continue
		}
		assert.GreaterOrEqual(t, cached, 2)
		assert.Equal(t, first, n.FindPath(from, to), "cached segments give the same path")

		g.ClearPathCache()
		assert.Equal(t, first, n.FindPath(from, to))
	}
}

func TestFindPathDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, n := newMesh(t, sea(16, 16), navmesh.WithSectorSize(4), navmesh.WithLogger(zap.New(core)))

	from, to := m.Ref(0, 0), m.Ref(15, 15)
	p, info := n.FindPathDebug(from, to)
	require.NotNil(t, p)
	require.NotNil(t, info)

	assert.Equal(t, p, info.SmoothPath)
	requireWaterPath(t, m, info.InitialPath, from, to)
	assert.GreaterOrEqual(t, len(info.GatewayPath), 2)

	assert.Equal(t, 4, info.Graph.SectorSize)
	assert.Len(t, info.Graph.Gateways, 4)
	assert.Len(t, info.Graph.Edges, 4)
	for _, e := range info.Graph.Edges {
		assert.LessOrEqual(t, e.FromID, e.ToID)
	}

	for _, k := range []string{"findGateways", "findGatewayPath", "buildInitialPath", "buildSmoothPath", "total"} {
		assert.Contains(t, info.Timings, k)
	}
	assert.NotContains(t, info.Timings, "earlyExitLocalPath")
	assert.Equal(t, 1, logs.FilterMessage("path found").Len())

	_, info = n.FindPathDebug(from, m.Ref(2, 1))
	assert.Contains(t, info.Timings, "earlyExitLocalPath")
	assert.Nil(t, info.InitialPath)
}

func TestInitialize_Debug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, n := newMesh(t, sea(16, 16), navmesh.WithSectorSize(4),
		navmesh.WithDebug(true), navmesh.WithLogger(zap.New(core)))

	info := n.BuildInfo()
	require.NotNil(t, info)
	assert.Equal(t, 4, info.Gateways)
	assert.Equal(t, 1, logs.FilterMessage("gateway graph built").Len())
	assert.Equal(t, 1, logs.FilterMessage("navmesh initialized").Len())

	_, quiet := newMesh(t, sea(16, 16), navmesh.WithSectorSize(4))
	assert.Nil(t, quiet.BuildInfo())
}

func TestBudgets(t *testing.T) {
	// a budget of one pop cannot reach anything but the start
	m, n := newMesh(t, sea(16, 16), navmesh.WithSectorSize(4),
		navmesh.WithEarlyExitIterations(1), navmesh.WithLocalIterations(1))
	assert.Nil(t, n.FindPath(m.Ref(0, 0), m.Ref(3, 0)))
	assert.Nil(t, n.FindPath(m.Ref(0, 0), m.Ref(15, 15)))
}
