package gamemap

import "fmt"

// Map is a packed terrain grid. It is immutable once built.
type Map struct {
	width, height int
	terrain       []byte
	numLandTiles  int
}

// New builds a Map over a copy of terrain, which must hold width×height bytes.
// Returns ErrEmptyMap or ErrSizeMismatch.
// Complexity: O(W×H).
func New(width, height int, terrain []byte) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyMap
	}
	if len(terrain) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrSizeMismatch, width, height, width*height, len(terrain))
	}
	data := make([]byte, len(terrain))
	copy(data, terrain)
	m := &Map{width: width, height: height, terrain: data}
	for _, b := range data {
		if b&(1<<LandBit) != 0 {
			m.numLandTiles++
		}
	}

	return m, nil
}

// FromRows builds a Map from rows of 'W' (ocean) and 'L' (land) characters.
//
//	m, _ := gamemap.FromRows([]string{
//	    "WWWWW",
//	    "WLLLW",
//	    "WWWWW",
//	})
func FromRows(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	h, w := len(rows), len(rows[0])
	terrain := make([]byte, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case 'W':
				terrain[y*w+x] = 1 << OceanBit
			case 'L':
				terrain[y*w+x] = 1 << LandBit
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTerrain, row[x], x, y)
			}
		}
	}

	return New(w, h, terrain)
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// NumTiles returns Width×Height.
func (m *Map) NumTiles() int { return m.width * m.height }

// NumLandTiles returns the number of tiles with the land bit set.
func (m *Map) NumLandTiles() int { return m.numLandTiles }

// Terrain returns the packed terrain bytes. Callers must not modify them.
func (m *Map) Terrain() []byte { return m.terrain }

// X returns the column of t.
func (m *Map) X(t TileRef) int { return int(t) % m.width }

// Y returns the row of t.
func (m *Map) Y(t TileRef) int { return int(t) / m.width }

// Ref returns the tile at (x,y). Coordinates are not checked.
func (m *Map) Ref(x, y int) TileRef { return TileRef(y*m.width + x) }

// InBounds reports whether (x,y) lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsValidRef reports whether t addresses a tile of this map.
func (m *Map) IsValidRef(t TileRef) bool {
	return t >= 0 && int(t) < len(m.terrain)
}

// IsWater reports whether the land bit of t is clear.
func (m *Map) IsWater(t TileRef) bool { return m.terrain[t]&(1<<LandBit) == 0 }

// IsLand reports whether the land bit of t is set.
func (m *Map) IsLand(t TileRef) bool { return !m.IsWater(t) }

// IsOcean reports whether the ocean bit of t is set.
func (m *Map) IsOcean(t TileRef) bool { return m.terrain[t]&(1<<OceanBit) != 0 }

// IsShoreline reports whether the shoreline bit of t is set.
func (m *Map) IsShoreline(t TileRef) bool { return m.terrain[t]&(1<<ShorelineBit) != 0 }

// Magnitude returns the low five terrain bits of t.
func (m *Map) Magnitude(t TileRef) int { return int(m.terrain[t] & magnitudeMask) }

// Neighbors appends the 4-connected neighbours of t (up, down, left, right).
func (m *Map) Neighbors(t TileRef, dst []TileRef) []TileRef {
	w := TileRef(m.width)
	if t >= w {
		dst = append(dst, t-w)
	}
	if int(t) < (m.height-1)*m.width {
		dst = append(dst, t+w)
	}
	x := int(t) % m.width
	if x != 0 {
		dst = append(dst, t-1)
	}
	if x != m.width-1 {
		dst = append(dst, t+1)
	}

	return dst
}

// ManhattanDist returns |ax-bx| + |ay-by| for two tiles of g.
func ManhattanDist(g Grid, a, b TileRef) int {
	return abs(g.X(a)-g.X(b)) + abs(g.Y(a)-g.Y(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
