package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navsat/bfs"
)

func always(int) bool { return true }

func TestSearch_OrderAndDistance(t *testing.T) {
	// 3×3 open grid from the centre: N, S, W, E first, then the corners.
	s := bfs.NewSearcher(9)
	var order, dists []int
	_, found := bfs.Search(s, 3, 3, 4, 10, always, func(n, d int) (struct{}, bfs.Verdict) {
		order = append(order, n)
		dists = append(dists, d)
		return struct{}{}, bfs.Expand
	})

	require.False(t, found)
	assert.Equal(t, []int{4, 1, 7, 3, 5, 0, 2, 6, 8}, order)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 2, 2, 2, 2}, dists)
}

func TestSearch_Stop(t *testing.T) {
	s := bfs.NewSearcher(5)
	got, found := bfs.Search(s, 5, 1, 0, 10, always, func(n, d int) (int, bfs.Verdict) {
		if n == 3 {
			return d * 100, bfs.Stop
		}
		return 0, bfs.Expand
	})

	require.True(t, found)
	assert.Equal(t, 300, got)
}

func TestSearch_RejectDoesNotExpand(t *testing.T) {
	// Row of 5: rejecting node 2 hides 3 and 4.
	s := bfs.NewSearcher(5)
	var seen []int
	bfs.Search(s, 5, 1, 0, 10, always, func(n, _ int) (int, bfs.Verdict) {
		seen = append(seen, n)
		if n == 2 {
			return 0, bfs.Reject
		}
		return 0, bfs.Expand
	})

	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestSearch_IsValidFiltersNeighbours(t *testing.T) {
	// 3×2 grid with node 1 blocked: 0 → 3 → 4 → 5 → 2.
	//   0 X 2
	//   3 4 5
	s := bfs.NewSearcher(6)
	dist := map[int]int{}
	bfs.Search(s, 3, 2, 0, 10, func(n int) bool { return n != 1 }, func(n, d int) (int, bfs.Verdict) {
		dist[n] = d
		return 0, bfs.Expand
	})

	assert.Equal(t, map[int]int{0: 0, 3: 1, 4: 2, 5: 3, 2: 4}, dist)
}

func TestSearch_MaxDistance(t *testing.T) {
	s := bfs.NewSearcher(10)
	var seen []int
	_, found := bfs.Search(s, 10, 1, 0, 3, always, func(n, _ int) (int, bfs.Verdict) {
		seen = append(seen, n)
		return 0, bfs.Expand
	})

	assert.False(t, found)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestSearch_ReuseAcrossCalls(t *testing.T) {
	s := bfs.NewSearcher(16)
	count := func() int {
		n := 0
		bfs.Search(s, 4, 4, 0, 100, always, func(int, int) (int, bfs.Verdict) {
			n++
			return 0, bfs.Expand
		})
		return n
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, 16, count(), "run %d", i)
	}
}

func TestSearch_InvalidInput(t *testing.T) {
	s := bfs.NewSearcher(4)
	visit := func(int, int) (int, bfs.Verdict) { return 1, bfs.Stop }

	cases := []struct {
		name          string
		width, height int
		start         int
	}{
		{"negative start", 2, 2, -1},
		{"start out of range", 2, 2, 4},
		{"grid larger than searcher", 3, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, found := bfs.Search(s, tc.width, tc.height, tc.start, 10, always, visit)
			assert.False(t, found)
		})
	}
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "expand", bfs.Expand.String())
	assert.Equal(t, "reject", bfs.Reject.String())
	assert.Equal(t, "stop", bfs.Stop.String())
	assert.Equal(t, "unknown", bfs.Verdict(9).String())
}
