package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/gateway"
)

func mustMini(t testing.TB, rows ...string) *gamemap.Map {
	t.Helper()
	m, err := gamemap.FromRows(rows)
	require.NoError(t, err)
	return m
}

func openSea(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		b := make([]byte, w)
		for j := range b {
			b[j] = 'W'
		}
		rows[i] = string(b)
	}
	return rows
}

type gw struct{ x, y int }

func positions(gws []*gateway.Gateway) []gw {
	out := make([]gw, len(gws))
	for i, g := range gws {
		out[i] = gw{g.X, g.Y}
	}
	return out
}

func TestBuild_SingleBorder(t *testing.T) {
	mini := mustMini(t, openSea(8, 4)...)
	g := gateway.NewBuilder(mini, 4).Build(false)

	assert.Equal(t, 2, g.SectorsX())
	assert.Equal(t, 1, g.SectorsY())
	assert.Equal(t, 4, g.SectorSize())
	require.Equal(t, 1, g.GatewayCount())

	only := g.Gateway(0)
	assert.Equal(t, gw{3, 2}, gw{only.X, only.Y})
	assert.Equal(t, mini.Ref(3, 2), only.Tile)
	assert.Equal(t, uint32(1), only.ComponentID)

	require.Len(t, g.Sectors(), 2)
	assert.Equal(t, []*gateway.Gateway{only}, g.Sector(0, 0).Gateways)
	assert.Equal(t, []*gateway.Gateway{only}, g.Sector(1, 0).Gateways)
	assert.Zero(t, g.EdgeCount())
}

// TestBuild_FourSectors checks gateway placement, sector membership and edge
// costs on an open 8×8 sea split into 2×2 sectors of 4.
func TestBuild_FourSectors(t *testing.T) {
	mini := mustMini(t, openSea(8, 8)...)
	g := gateway.NewBuilder(mini, 4).Build(false)

	assert.Equal(t, []gw{{3, 2}, {2, 3}, {6, 3}, {3, 6}}, positions(g.Gateways()))
	for i, gwy := range g.Gateways() {
		assert.Equal(t, i, gwy.ID)
	}

	order := g.Sectors()
	require.Len(t, order, 4)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		[][2]int{{order[0].X, order[0].Y}, {order[1].X, order[1].Y}, {order[2].X, order[2].Y}, {order[3].X, order[3].Y}})

	assert.Equal(t, []gw{{3, 2}, {2, 3}}, positions(g.Sector(0, 0).Gateways))
	assert.Equal(t, []gw{{3, 2}, {6, 3}}, positions(g.Sector(1, 0).Gateways))
	assert.Equal(t, []gw{{2, 3}, {3, 6}}, positions(g.Sector(0, 1).Gateways))
	assert.Equal(t, []gw{{6, 3}, {3, 6}}, positions(g.Sector(1, 1).Gateways))

	cases := []struct {
		from, to, cost, sx, sy int
	}{
		{0, 1, 2, 0, 0},
		{0, 2, 4, 1, 0},
		{1, 3, 4, 0, 1},
		{2, 3, 6, 1, 1},
	}
	for _, tc := range cases {
		e := g.Edge(tc.from, tc.to)
		require.NotNil(t, e, "edge %d→%d", tc.from, tc.to)
		assert.Equal(t, tc.cost, e.Cost)
		assert.Equal(t, [2]int{tc.sx, tc.sy}, [2]int{e.SectorX, e.SectorY})

		back := g.Edge(tc.to, tc.from)
		require.NotNil(t, back)
		assert.Equal(t, tc.cost, back.Cost)
	}
	assert.Nil(t, g.Edge(0, 3))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Len(t, g.NearbySectorGateways(0, 0), 8)
	assert.Len(t, g.NearbySectorGateways(5, 5), 0)
}

// TestBuild_CheaperSectorWins: both gateways sit on the x=3 border, so the
// pair is linked from the left sector (detour, cost 8) and then from the
// right sector (cost 4); the right one must replace both halves.
func TestBuild_CheaperSectorWins(t *testing.T) {
	mini := mustMini(t,
		"WWWWWWWW",
		"WWWWWWWW",
		"WLLLWWWW",
		"WWWWWWWW",
	)
	g := gateway.NewBuilder(mini, 4).Build(false)

	require.Equal(t, []gw{{3, 1}, {3, 3}}, positions(g.Gateways()))
	for _, pair := range [][2]int{{0, 1}, {1, 0}} {
		e := g.Edge(pair[0], pair[1])
		require.NotNil(t, e)
		assert.Equal(t, 4, e.Cost)
		assert.Equal(t, 1, e.SectorX)
		assert.Len(t, g.Edges(pair[0]), 1)
	}
	assert.Len(t, g.Sector(0, 0).Edges, 2, "left sector keeps its own record")
	assert.Len(t, g.Sector(1, 0).Edges, 2)
}

func TestBuild_ComponentFilter(t *testing.T) {
	mini := mustMini(t,
		"WWWWWWWW",
		"WWWWWWWW",
		"LLLLLLLL",
		"WWWWWWWW",
	)
	b := gateway.NewBuilder(mini, 4)
	g := b.Build(true)

	require.Equal(t, 2, g.GatewayCount())
	assert.NotEqual(t, g.Gateway(0).ComponentID, g.Gateway(1).ComponentID)
	assert.Zero(t, g.EdgeCount())

	info := b.DebugInfo()
	require.NotNil(t, info)
	assert.Equal(t, 2, info.Sectors)
	assert.Equal(t, 2, info.Gateways)
	assert.Equal(t, 0, info.Edges)
	assert.Equal(t, 2, info.Components)
	assert.Equal(t, 2, info.PotentialBFSCalls)
	assert.Equal(t, 2, info.SkippedByComponentFilter)
	assert.Equal(t, 0, info.ActualBFSCalls)
	for _, k := range []string{"water_components", "gateways", "edges", "total"} {
		assert.Contains(t, info.Timings, k)
	}

	assert.Equal(t, uint32(1), g.ComponentID(mini.Ref(0, 0)))
	assert.Equal(t, uint32(0), g.ComponentID(mini.Ref(0, 2)))
}

func TestBuild_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"all land", []string{"LLLLLLLL", "LLLLLLLL"}},
		{"single sector", openSea(3, 3)},
		{"single tile", []string{"W"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := gateway.NewBuilder(mustMini(t, tc.rows...), 4).Build(false)
			assert.Zero(t, g.GatewayCount())
			assert.Zero(t, g.EdgeCount())
			assert.Nil(t, g.Gateway(0))
			assert.Nil(t, g.Edges(0))
		})
	}
}

func TestBuild_DefaultSectorSize(t *testing.T) {
	g := gateway.NewBuilder(mustMini(t, openSea(70, 10)...), 0).Build(false)
	assert.Equal(t, gateway.DefaultSectorSize, g.SectorSize())
	assert.Equal(t, 3, g.SectorsX())
	assert.Equal(t, 1, g.SectorsY())
	assert.Nil(t, g.Sector(3, 0))
	assert.Nil(t, g.Sector(-1, 0))
}

func TestBuild_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := gateway.NewBuilder(mustMini(t, openSea(8, 8)...), 4, gateway.WithLogger(zap.New(core)))
	b.Build(true)

	entries := logs.FilterMessage("gateway graph built").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 4, fields["gateways"])
	assert.EqualValues(t, 4, fields["edges"])

	// no output without debug
	logs.TakeAll()
	gateway.NewBuilder(mustMini(t, openSea(8, 8)...), 4, gateway.WithLogger(zap.New(core))).Build(false)
	assert.Zero(t, logs.Len())
}

func TestGraph_ClearPathCache(t *testing.T) {
	g := gateway.NewBuilder(mustMini(t, openSea(8, 8)...), 4).Build(false)
	e := g.Edge(0, 1)
	require.NotNil(t, e)
	e.Path = []gamemap.TileRef{1, 2, 3}

	g.ClearPathCache()
	assert.Nil(t, g.Edge(0, 1).Path)
}
