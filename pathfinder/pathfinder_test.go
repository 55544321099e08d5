package pathfinder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
	"github.com/katalvlaran/navsat/pathfinder"
	"github.com/katalvlaran/navsat/world"
)

type backend struct {
	name string
	make func(t *testing.T, w *world.World) pathfinder.PathFinder
}

var backends = []backend{
	{"navmesh", func(t *testing.T, w *world.World) pathfinder.PathFinder {
		a, err := pathfinder.NewNavMeshAdapter(w)
		require.NoError(t, err)
		return a
	}},
	{"legacy", func(_ *testing.T, w *world.World) pathfinder.PathFinder {
		return pathfinder.WaterLegacy(w, pathfinder.Options{})
	}},
}

func mustWorld(t *testing.T, rows ...string) *world.World {
	t.Helper()
	w, err := world.FromRows(rows, world.WithNavMeshOptions(navmesh.WithSectorSize(4)))
	require.NoError(t, err)

	return w
}

// sea returns w×h water rows with the inclusive rectangle {x0, y0, x1, y1}
// of land.
func sea(w, h int, land [4]int) []string {
	rows := make([]string, h)
	for y := range rows {
		b := []byte(strings.Repeat("W", w))
		if y >= land[1] && y <= land[3] {
			for x := land[0]; x <= land[2]; x++ {
				b[x] = 'L'
			}
		}
		rows[y] = string(b)
	}

	return rows
}

func forEachBackend(t *testing.T, fn func(t *testing.T, b backend)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) { fn(t, b) })
	}
}

func TestFindPath_Rows(t *testing.T) {
	cases := []struct {
		name     string
		rows     []string
		from, to [2]int
		want     []gamemap.TileRef
		found    bool
	}{
		{name: "straight", rows: []string{"WWWW"}, to: [2]int{3, 0}, want: []gamemap.TileRef{0, 1, 2, 3}, found: true},
		{name: "blocked", rows: []string{"WWLLWW"}, to: [2]int{5, 0}},
		{name: "separate lakes", rows: []string{"WWLLWWWW", "WWLLWWWW", "WWLLWWWW", "WWLLWWWW"}, to: [2]int{7, 3}},
		// known limitation: the coarse mini-map lets these cross land
		{name: "coarse row", rows: []string{"WLLWLWWLLW"}, to: [2]int{9, 0}, found: true},
		{name: "coarse diagonal", rows: []string{"WL", "LW"}, to: [2]int{1, 1}, found: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forEachBackend(t, func(t *testing.T, b backend) {
				w := mustWorld(t, tc.rows...)
				from, to := w.Ref(tc.from[0], tc.from[1]), w.Ref(tc.to[0], tc.to[1])
				p := b.make(t, w).FindPath(from, to)
				if !tc.found {
					assert.Nil(t, p)
					return
				}
				require.NotNil(t, p)
				assert.Equal(t, from, p[0])
				assert.Equal(t, to, p[len(p)-1])
				if tc.want != nil {
					assert.Equal(t, tc.want, p)
				}
			})
		})
	}
}

func TestFindPath_SameTile(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, "WWWW", "WWWW")
		pf := b.make(t, w)
		for _, tile := range []gamemap.TileRef{0, 5, 7} {
			p := pf.FindPath(tile, tile)
			require.NotEmpty(t, p)
			assert.LessOrEqual(t, len(p), 2)
			assert.Equal(t, tile, p[0])
		}
	})
}

func TestFindPath_AroundIsland(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, sea(32, 32, [4]int{8, 8, 23, 23})...)
		m := w.Full()
		from, to := w.Ref(0, 0), w.Ref(31, 31)
		p := b.make(t, w).FindPath(from, to)
		require.NotNil(t, p)
		assert.Equal(t, from, p[0])
		assert.Equal(t, to, p[len(p)-1])
		for i, tile := range p {
			require.True(t, m.IsWater(tile), "tile %d is land", i)
			if i > 0 {
				dx, dy := m.X(tile)-m.X(p[i-1]), m.Y(tile)-m.Y(p[i-1])
				require.True(t, dx*dx <= 1 && dy*dy <= 1, "gap at %d", i)
			}
		}
	})
}

func TestNext_Stepping(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, "WWWW")
		pf := b.make(t, w)
		want := []pathfinder.Result{
			{Status: pathfinder.Next, Node: 1},
			{Status: pathfinder.Next, Node: 2},
			{Status: pathfinder.Next, Node: 3},
			{Status: pathfinder.Complete, Node: 3},
		}
		from := gamemap.TileRef(0)
		for i, exp := range want {
			got := pf.Next(from, 3, 0)
			require.Equal(t, exp, got, "step %d", i)
			from = got.Node
		}
	})
}

func TestNext_Guards(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, "WWWWWWWW")
		pf := b.make(t, w)

		assert.Equal(t, pathfinder.NotFound, pf.Next(-1, 3, 0).Status)
		assert.Equal(t, pathfinder.NotFound, pf.Next(0, 8, 0).Status)
		assert.Equal(t, pathfinder.Result{Status: pathfinder.Complete, Node: 4}, pf.Next(4, 4, 0))
		assert.Equal(t, pathfinder.Result{Status: pathfinder.Complete, Node: 0}, pf.Next(0, 3, 3))
		assert.Equal(t, pathfinder.Result{Status: pathfinder.Next, Node: 1}, pf.Next(0, 3, 2))
	})
}

func TestNext_DestinationChange(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, strings.Repeat("W", 20))
		pf := b.make(t, w)

		cur := gamemap.TileRef(0)
		for i := 0; i < 3; i++ {
			r := pf.Next(cur, 19, 0)
			require.Equal(t, pathfinder.Next, r.Status)
			cur = r.Node
		}
		require.Equal(t, gamemap.TileRef(3), cur)

		var last pathfinder.Result
		for i := 0; i < 100; i++ {
			last = pf.Next(cur, 10, 0)
			if last.Status != pathfinder.Next {
				break
			}
			cur = last.Node
		}
		assert.Equal(t, pathfinder.Result{Status: pathfinder.Complete, Node: 10}, last)
		assert.Equal(t, gamemap.TileRef(10), cur)
	})
}

func TestNext_Deviation(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, strings.Repeat("W", 20))
		pf := b.make(t, w)

		require.Equal(t, pathfinder.Result{Status: pathfinder.Next, Node: 1}, pf.Next(0, 19, 0))
		// the unit was pushed to tile 5
		assert.Equal(t, pathfinder.Result{Status: pathfinder.Next, Node: 6}, pf.Next(5, 19, 0))
		assert.Equal(t, pathfinder.Result{Status: pathfinder.Next, Node: 7}, pf.Next(6, 19, 0))
	})
}

// Stepping with Next visits exactly the tiles of FindPath.
func TestNext_MatchesFindPath(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend) {
		w := mustWorld(t, sea(32, 32, [4]int{8, 8, 23, 23})...)
		from, to := w.Ref(31, 0), w.Ref(2, 30)
		want := b.make(t, w).FindPath(from, to)
		require.NotNil(t, want)

		pf := b.make(t, w)
		got := []gamemap.TileRef{from}
		cur := from
		for i := 0; i < 10000; i++ {
			r := pf.Next(cur, to, 0)
			if r.Status == pathfinder.Complete {
				break
			}
			if r.Status == pathfinder.Pending {
				continue
			}
			require.Equal(t, pathfinder.Next, r.Status)
			cur = r.Node
			got = append(got, cur)
		}
		assert.Equal(t, want, got)
	})
}

func TestLegacy_Pending(t *testing.T) {
	w := mustWorld(t, strings.Repeat("W", 40))
	pf := pathfinder.WaterLegacy(w, pathfinder.Options{Iterations: 1, MaxTries: 1000})

	pending := 0
	r := pf.Next(0, 39, 0)
	for r.Status == pathfinder.Pending {
		pending++
		r = pf.Next(0, 39, 0)
	}
	assert.Positive(t, pending)
	assert.Equal(t, pathfinder.Result{Status: pathfinder.Next, Node: 1}, r)
}

func TestLegacy_MaxTries(t *testing.T) {
	w := mustWorld(t, strings.Repeat("W", 40))
	pf := pathfinder.WaterLegacy(w, pathfinder.Options{Iterations: 1, MaxTries: 2})

	assert.Equal(t, pathfinder.Pending, pf.Next(0, 39, 0).Status)
	assert.Equal(t, pathfinder.NotFound, pf.Next(0, 39, 0).Status)
	assert.Nil(t, pf.FindPath(0, 39))
}

func TestWater_Selection(t *testing.T) {
	w := mustWorld(t, "WWWW")
	assert.IsType(t, &pathfinder.NavMeshAdapter{}, pathfinder.Water(w))

	bare, err := world.FromRows([]string{"WWWW"}, world.WithNavMesh(false))
	require.NoError(t, err)
	assert.IsType(t, &pathfinder.MiniAStarAdapter{}, pathfinder.Water(bare))
	assert.Equal(t, []gamemap.TileRef{0, 1, 2, 3}, pathfinder.Water(bare).FindPath(0, 3))

	_, err = pathfinder.NewNavMeshAdapter(bare)
	assert.ErrorIs(t, err, pathfinder.ErrNoNavMesh)
}

func TestStatus_String(t *testing.T) {
	cases := map[pathfinder.Status]string{
		pathfinder.Next:     "NEXT",
		pathfinder.Pending:  "PENDING",
		pathfinder.Complete: "COMPLETE",
		pathfinder.NotFound: "NOT_FOUND",
		pathfinder.Status(9): "UNKNOWN",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.String())
	}
}
