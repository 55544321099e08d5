package gamemap

import "math"

// Downscale builds the half-resolution mini-map of m: ceil(w/2) × ceil(h/2)
// tiles, a mini tile being water (ocean) if ANY tile of its 2×2 block is
// water, land otherwise.
// Complexity: O(W×H).
func Downscale(m *Map) *Map {
	mw := (m.width + 1) / 2
	mh := (m.height + 1) / 2
	terrain := make([]byte, mw*mh)
	land := 0
	for my := 0; my < mh; my++ {
		for mx := 0; mx < mw; mx++ {
			water := false
			for dy := 0; dy < 2 && !water; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := mx*2+dx, my*2+dy
					if x < m.width && y < m.height && m.IsWater(m.Ref(x, y)) {
						water = true
						break
					}
				}
			}
			if water {
				terrain[my*mw+mx] = 1 << OceanBit
			} else {
				terrain[my*mw+mx] = 1 << LandBit
				land++
			}
		}
	}

	return &Map{width: mw, height: mh, terrain: terrain, numLandTiles: land}
}

type cell struct{ x, y int }

// UpscalePath converts a path over mini into a contiguous path over full
// that starts exactly at from and ends exactly at to.
//
// Steps:
//  1. Scale every mini tile by 2.
//  2. Fill the gap between consecutive scaled points with
//     max(|dx|,|dy|)-1 interpolated points, rounding half up.
//  3. If from is absent, prepend it; otherwise drop everything before its
//     first occurrence.
//  4. If to is absent, append it; otherwise drop everything after its first
//     occurrence.
//
// Complexity: O(L) where L is the length of the result.
func UpscalePath(full, mini Grid, miniPath []TileRef, from, to TileRef) []TileRef {
	cells := make([]cell, 0, len(miniPath)*2+2)
	for i, t := range miniPath {
		cur := cell{mini.X(t) * 2, mini.Y(t) * 2}
		cells = append(cells, cur)
		if i == len(miniPath)-1 {
			break
		}
		next := miniPath[i+1]
		dx := mini.X(next)*2 - cur.x
		dy := mini.Y(next)*2 - cur.y
		steps := max(abs(dx), abs(dy))
		for step := 1; step < steps; step++ {
			cells = append(cells, cell{
				x: roundHalfUp(float64(cur.x) + float64(dx*step)/float64(steps)),
				y: roundHalfUp(float64(cur.y) + float64(dy*step)/float64(steps)),
			})
		}
	}

	fromCell := cell{full.X(from), full.Y(from)}
	toCell := cell{full.X(to), full.Y(to)}

	if i := indexOf(cells, fromCell); i == -1 {
		cells = append([]cell{fromCell}, cells...)
	} else if i > 0 {
		cells = cells[i:]
	}
	if i := indexOf(cells, toCell); i == -1 {
		cells = append(cells, toCell)
	} else {
		cells = cells[:i+1]
	}

	out := make([]TileRef, len(cells))
	for i, c := range cells {
		out[i] = full.Ref(c.x, c.y)
	}

	return out
}

func indexOf(cells []cell, c cell) int {
	for i := range cells {
		if cells[i] == c {
			return i
		}
	}

	return -1
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
