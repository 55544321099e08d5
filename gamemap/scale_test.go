package gamemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navsat/gamemap"
)

// TestDownscale_AnyWater checks the "water if ANY tile of the 2×2 block is
// water" rule, including the partial blocks of odd dimensions.
//
//	WL LL L      W L W
//	LL LL W  ->  L L W
//	LL LW L
//	LL LL L
//	WL LL L
func TestDownscale_AnyWater(t *testing.T) {
	m, err := gamemap.FromRows([]string{
		"WLLLL",
		"LLLLW",
		"LLLWL",
		"LLLLL",
		"WLLLL",
	})
	require.NoError(t, err)

	mini := gamemap.Downscale(m)
	require.Equal(t, 3, mini.Width())
	require.Equal(t, 3, mini.Height())

	want := []string{
		"WLW",
		"LWL",
		"WLL",
	}
	for y, row := range want {
		for x := range row {
			assert.Equal(t, row[x] == 'W', mini.IsWater(mini.Ref(x, y)), "mini (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 5, mini.NumLandTiles())
}

func TestUpscalePath(t *testing.T) {
	full, err := gamemap.FromRows([]string{
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWW",
	})
	require.NoError(t, err)
	mini := gamemap.Downscale(full)

	t.Run("straight row appends missing goal", func(t *testing.T) {
		miniPath := []gamemap.TileRef{mini.Ref(0, 0), mini.Ref(1, 0)}
		got := gamemap.UpscalePath(full, mini, miniPath, full.Ref(0, 0), full.Ref(3, 0))
		assert.Equal(t, []gamemap.TileRef{0, 1, 2, 3}, got)
	})

	t.Run("start inside path is cut", func(t *testing.T) {
		miniPath := []gamemap.TileRef{mini.Ref(0, 0), mini.Ref(1, 0), mini.Ref(2, 0)}
		got := gamemap.UpscalePath(full, mini, miniPath, full.Ref(2, 0), full.Ref(4, 0))
		assert.Equal(t, []gamemap.TileRef{2, 3, 4}, got)
	})

	t.Run("missing start is prepended", func(t *testing.T) {
		miniPath := []gamemap.TileRef{mini.Ref(0, 0), mini.Ref(1, 0)}
		got := gamemap.UpscalePath(full, mini, miniPath, full.Ref(1, 1), full.Ref(2, 0))
		assert.Equal(t, []gamemap.TileRef{full.Ref(1, 1), full.Ref(0, 0), full.Ref(1, 0), full.Ref(2, 0)}, got)
	})

	t.Run("single mini tile", func(t *testing.T) {
		miniPath := []gamemap.TileRef{mini.Ref(0, 0)}
		got := gamemap.UpscalePath(full, mini, miniPath, full.Ref(0, 0), full.Ref(1, 1))
		assert.Equal(t, []gamemap.TileRef{full.Ref(0, 0), full.Ref(1, 1)}, got)
	})

	t.Run("diagonal interpolation rounds half up", func(t *testing.T) {
		// (0,0) -> (2,2) scaled: one interpolated point at (1,1).
		miniPath := []gamemap.TileRef{mini.Ref(0, 0), mini.Ref(1, 1)}
		got := gamemap.UpscalePath(full, mini, miniPath, full.Ref(0, 0), full.Ref(2, 2))
		assert.Equal(t, []gamemap.TileRef{full.Ref(0, 0), full.Ref(1, 1), full.Ref(2, 2)}, got)
	})
}
