package water

import (
	"github.com/katalvlaran/navsat/gamemap"
)

// Components holds the water component labeling of one grid.
type Components struct {
	grid          gamemap.Grid
	width         int
	numTiles      int
	lastRowStart  int
	terrainAccess bool
	queue         []int32

	// exactly one of these is non-nil after Initialize
	ids8  []uint8
	ids16 []uint16
	ids32 []uint32

	count int
}

// New prepares a labeling of grid. Nothing is computed until Initialize.
func New(grid gamemap.Grid, opts ...Option) *Components {
	w, h := grid.Width(), grid.Height()
	c := &Components{
		grid:          grid,
		width:         w,
		numTiles:      w * h,
		lastRowStart:  (h - 1) * w,
		terrainAccess: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Initialize labels every water tile. Calling it again recomputes from scratch.
func (c *Components) Initialize() {
	c.ids8, c.ids16, c.ids32 = nil, nil, nil
	if c.queue == nil {
		c.queue = make([]int32, 0, c.width)
	}

	var next uint32
	ids8 := c.premark()
	start := label(c, ids8, 0, &next, maxID8)
	if start == c.numTiles {
		c.ids8, c.count = ids8, int(next)
		return
	}

	ids16 := widen[uint8, uint16](ids8, landMarker8, landMarker16)
	start = label(c, ids16, start, &next, maxID16)
	if start == c.numTiles {
		c.ids16, c.count = ids16, int(next)
		return
	}

	ids32 := widen[uint16, uint32](ids16, landMarker16, landMarker32)
	label(c, ids32, start, &next, maxID32)
	c.ids32, c.count = ids32, int(next)
}

// ComponentID returns the component of tile, or 0 for land, invalid tiles,
// and before Initialize.
func (c *Components) ComponentID(tile gamemap.TileRef) uint32 {
	if tile < 0 || int(tile) >= c.numTiles {
		return 0
	}
	switch {
	case c.ids8 != nil:
		if v := c.ids8[tile]; v != landMarker8 {
			return uint32(v)
		}
	case c.ids16 != nil:
		if v := c.ids16[tile]; v != landMarker16 {
			return uint32(v)
		}
	case c.ids32 != nil:
		if v := c.ids32[tile]; v != landMarker32 {
			return v
		}
	}

	return 0
}

// Count returns the number of components found by the last Initialize.
func (c *Components) Count() int { return c.count }

// StorageBits reports the current id width: 8, 16 or 32, or 0 before
// Initialize.
func (c *Components) StorageBits() int {
	switch {
	case c.ids8 != nil:
		return 8
	case c.ids16 != nil:
		return 16
	case c.ids32 != nil:
		return 32
	}

	return 0
}

// premark returns a narrow id store with land tiles set to landMarker8 and
// water tiles left at 0.
func (c *Components) premark() []uint8 {
	ids := make([]uint8, c.numTiles)
	if src, ok := c.grid.(gamemap.TerrainSource); ok && c.terrainAccess {
		terrain := src.Terrain()
		if len(terrain) == c.numTiles {
			for i, b := range terrain {
				// land bit → 1 → 0xFF; water → 0
				ids[i] = (b >> gamemap.LandBit) * landMarker8
			}
			return ids
		}
	}
	for i := range ids {
		if !c.grid.IsWater(gamemap.TileRef(i)) {
			ids[i] = landMarker8
		}
	}

	return ids
}

// label assigns ids to unlabeled components from tile start onwards. It stops
// and returns the seed tile when the next id would exceed limit, or returns
// numTiles once the scan completes.
func label[T idWord](c *Components, ids []T, start int, next *uint32, limit uint32) int {
	for s := start; s < c.numTiles; s++ {
		if ids[s] != 0 {
			continue
		}
		if *next+1 > limit {
			return s
		}
		*next++
		fill(c, ids, s, T(*next))
	}

	return c.numTiles
}

// fill labels the component containing seed with id using scan-line spans.
// Unlabeled (0) tiles are water by construction.
func fill[T idWord](c *Components, ids []T, seed int, id T) {
	queue := append(c.queue[:0], int32(seed))

	for head := 0; head < len(queue); head++ {
		s := int(queue[head])
		if ids[s] != 0 {
			continue
		}

		rowStart := s - s%c.width
		rowEnd := rowStart + c.width - 1
		left, right := s, s
		for left > rowStart && ids[left-1] == 0 {
			left--
		}
		for right < rowEnd && ids[right+1] == 0 {
			right++
		}

		for x := left; x <= right; x++ {
			ids[x] = id
			if x >= c.width {
				if above := x - c.width; ids[above] == 0 {
					queue = append(queue, int32(above))
				}
			}
			if x < c.lastRowStart {
				if below := x + c.width; ids[below] == 0 {
					queue = append(queue, int32(below))
				}
			}
		}
	}
	c.queue = queue
}

// widen copies ids into a wider store, remapping the land marker.
func widen[From, To idWord](ids []From, fromLand From, toLand To) []To {
	out := make([]To, len(ids))
	for i, v := range ids {
		if v == fromLand {
			out[i] = toLand
			continue
		}
		out[i] = To(v)
	}

	return out
}
