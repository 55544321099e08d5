package navmesh

import "github.com/katalvlaran/navsat/gamemap"

// tracePath appends to dst the 4-connected Bresenham line from a to b over
// the full map. A diagonal step becomes two axis moves, X first unless that
// tile is land. It reports false when the line is blocked or longer than
// maxTraceTiles.
func (n *NavMesh) tracePath(a, b gamemap.TileRef, dst []gamemap.TileRef) ([]gamemap.TileRef, bool) {
	g := n.full
	x0, y0 := g.X(a), g.Y(a)
	x1, y1 := g.X(b), g.Y(b)
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	e := dx - dy
	x, y := x0, y0

	for iterations := 0; ; iterations++ {
		if iterations > maxTraceTiles {
			return dst, false
		}
		t := g.Ref(x, y)
		if !g.IsWater(t) {
			return dst, false
		}
		dst = append(dst, t)
		if x == x1 && y == y1 {
			return dst, true
		}

		e2 := 2 * e
		moveX, moveY := e2 > -dy, e2 < dx
		switch {
		case moveX && moveY:
			if via := g.Ref(x+sx, y); g.IsWater(via) {
				dst = append(dst, via)
			} else if via = g.Ref(x, y+sy); g.IsWater(via) {
				dst = append(dst, via)
			} else {
				return dst, false
			}
			x += sx
			y += sy
			e += dx - dy
		case moveX:
			x += sx
			e -= dy
		case moveY:
			y += sy
			e += dx
		}
	}
}

// smoothPath replaces runs of p by straight traces where the line of sight
// over water allows it. Probes advance by max(1, len/20) tiles; the last
// tile is tried separately. Paths of two tiles or fewer are returned as is.
func (n *NavMesh) smoothPath(p []gamemap.TileRef) []gamemap.TileRef {
	if len(p) <= 2 {
		return p
	}
	last := len(p) - 1
	step := max(1, len(p)/20)
	best, scratch := n.traceA[:0], n.traceB[:0]
	out := make([]gamemap.TileRef, 0, len(p))

	for current := 0; current < last; {
		farthest := current + 1
		found := false
		for i := current + 2; i < len(p); i += step {
			trace, ok := n.tracePath(p[current], p[i], scratch[:0])
			if !ok {
				scratch = trace
				break
			}
			farthest, found = i, true
			best, scratch = trace, best
		}

		if farthest < last && (last-current)%10 != 0 {
			if trace, ok := n.tracePath(p[current], p[last], scratch[:0]); ok {
				farthest, found = last, true
				best, scratch = trace, best
			} else {
				scratch = trace
			}
		}

		if found && farthest > current+1 {
			out = append(out, best[:len(best)-1]...)
		} else {
			out = append(out, p[current])
		}
		current = farthest
	}
	n.traceA, n.traceB = best, scratch

	return append(out, p[last])
}
