// Package viewer draws a map and a water path on a terminal with tcell.
package viewer

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/pathfinder"
	"github.com/katalvlaran/navsat/world"
)

// Cell glyphs.
const (
	GlyphWater = '~'
	GlyphLand  = '#'
	GlyphPath  = '*'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

var (
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleLand   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Point is a map coordinate.
type Point struct{ X, Y int }

// Render draws the part of w whose top-left tile is origin over the whole
// screen, then path on top of it. The first and last path tiles are drawn as
// GlyphStart and GlyphEnd. Cells past the map edge are blank.
func Render(screen tcell.Screen, w *world.World, path []gamemap.TileRef, origin Point) {
	m := w.Full()
	sw, sh := screen.Size()
	for sy := 0; sy < sh; sy++ {
		for sx := 0; sx < sw; sx++ {
			x, y := origin.X+sx, origin.Y+sy
			switch {
			case !m.InBounds(x, y):
				screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault)
			case m.IsWater(m.Ref(x, y)):
				screen.SetContent(sx, sy, GlyphWater, nil, styleWater)
			default:
				screen.SetContent(sx, sy, GlyphLand, nil, styleLand)
			}
		}
	}

	for i, t := range path {
		sx, sy := m.X(t)-origin.X, m.Y(t)-origin.Y
		if sx < 0 || sy < 0 || sx >= sw || sy >= sh {
			continue
		}
		glyph, style := GlyphPath, stylePath
		switch i {
		case 0:
			glyph, style = GlyphStart, styleMarker
		case len(path) - 1:
			glyph, style = GlyphEnd, styleMarker
		}
		screen.SetContent(sx, sy, glyph, nil, style)
	}
}

// Action is a viewer command. Key events map to actions. Run also accepts
// actions posted as the data of a tcell.EventInterrupt.
type Action int

const (
	None Action = iota
	PanUp
	PanDown
	PanLeft
	PanRight
	Recompute
	Quit
)

// panStep is the number of tiles moved per pan.
const panStep = 8

// View is the interactive state of Run.
type View struct {
	world    *world.World
	finder   pathfinder.PathFinder
	from, to gamemap.TileRef
	path     []gamemap.TileRef
	elapsed  time.Duration
	origin   Point
}

// NewView returns a view of the route from → to, answered by pf.
func NewView(w *world.World, pf pathfinder.PathFinder, from, to gamemap.TileRef) *View {
	return &View{world: w, finder: pf, from: from, to: to}
}

// Path returns the last computed path.
func (v *View) Path() []gamemap.TileRef { return v.path }

// Origin returns the map tile at the top-left screen cell.
func (v *View) Origin() Point { return v.origin }

// Recompute runs the path query again.
func (v *View) Recompute() {
	start := time.Now()
	v.path = v.finder.FindPath(v.from, v.to)
	v.elapsed = time.Since(start)
}

// Center moves the origin so that the start tile is in the middle of a
// width × height viewport.
func (v *View) Center(width, height int) {
	v.origin = Point{X: v.world.X(v.from) - width/2, Y: v.world.Y(v.from) - height/2}
	v.clamp(width, height)
}

// Apply performs a on a width × height viewport and reports whether the view
// is still open.
func (v *View) Apply(a Action, width, height int) bool {
	switch a {
	case PanUp:
		v.origin.Y -= panStep
	case PanDown:
		v.origin.Y += panStep
	case PanLeft:
		v.origin.X -= panStep
	case PanRight:
		v.origin.X += panStep
	case Recompute:
		v.Recompute()
	case Quit:
		return false
	}
	v.clamp(width, height)

	return true
}

func (v *View) clamp(width, height int) {
	m := v.world.Full()
	v.origin.X = max(0, min(v.origin.X, m.Width()-width))
	v.origin.Y = max(0, min(v.origin.Y, m.Height()-height))
}

// Draw renders the map above a one-line status bar.
func (v *View) Draw(screen tcell.Screen) {
	Render(screen, v.world, v.path, v.origin)
	sw, sh := screen.Size()
	if sh == 0 {
		return
	}
	for sx, r := range []rune(v.Status()) {
		if sx >= sw {
			break
		}
		screen.SetContent(sx, sh-1, r, nil, styleStatus)
	}
}

// Status describes the route and the last query.
func (v *View) Status() string {
	w := v.world
	route := fmt.Sprintf("(%d,%d) -> (%d,%d)", w.X(v.from), w.Y(v.from), w.X(v.to), w.Y(v.to))
	if v.path == nil {
		return fmt.Sprintf("%s  no path  %s  [arrows] pan [p] recompute [q] quit", route, v.elapsed)
	}

	return fmt.Sprintf("%s  %d tiles  %s  [arrows] pan [p] recompute [q] quit", route, len(v.path), v.elapsed)
}

func keyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return PanUp
	case tcell.KeyDown:
		return PanDown
	case tcell.KeyLeft:
		return PanLeft
	case tcell.KeyRight:
		return PanRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Quit
		case 'p':
			return Recompute
		}
	}

	return None
}

// Run shows the route from → to on screen until Quit. The screen must be
// initialized; Run does not finalize it. The status bar takes the last row,
// so the viewport is one row shorter than the screen.
func Run(screen tcell.Screen, w *world.World, from, to gamemap.TileRef) error {
	if !w.Full().IsValidRef(from) || !w.Full().IsValidRef(to) {
		return fmt.Errorf("viewer: route (%d) -> (%d) is outside the map", from, to)
	}
	v := NewView(w, pathfinder.Water(w), from, to)
	v.Recompute()
	sw, sh := screen.Size()
	v.Center(sw, sh-1)

	for {
		v.Draw(screen)
		screen.Show()

		var a Action
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			a = keyAction(ev)
		case *tcell.EventInterrupt:
			a, _ = ev.Data().(Action)
		case *tcell.EventResize:
			screen.Sync()
		}
		sw, sh = screen.Size()
		if !v.Apply(a, sw, sh-1) {
			return nil
		}
	}
}
