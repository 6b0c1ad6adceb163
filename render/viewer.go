// Package render draws the claimed grid in the terminal
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/claimgrid/core"
	"github.com/lixenwraith/claimgrid/grid"
	"github.com/lixenwraith/claimgrid/report"
	"github.com/lixenwraith/claimgrid/vmath"
)

// Cell glyphs by claim count
const (
	RuneEmpty   = ' '
	RuneSingle  = '░'
	RuneOverlap = '█'
	RuneIntact  = '▓'
)

var (
	StyleEmpty   = tcell.StyleDefault
	StyleSingle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleOverlap = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleIntact  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Viewer is an interactive, pannable map of a populated grid index
// The last screen row is reserved for the status line
type Viewer struct {
	screen  tcell.Screen
	idx     *grid.Index
	summary report.Summary
	bounds  core.Rect
	buf     *Buffer

	// Pan offset from the bounding box top-left
	offX, offY int
}

// NewViewer creates a viewer over an initialized screen
func NewViewer(screen tcell.Screen, idx *grid.Index, summary report.Summary) *Viewer {
	w, h := screen.Size()
	return &Viewer{
		screen:  screen,
		idx:     idx,
		summary: summary,
		bounds:  summary.Bounds,
		buf:     NewBuffer(w, h),
	}
}

// Offset returns the current pan offset
func (v *Viewer) Offset() (int, int) {
	return v.offX, v.offY
}

// mapHeight is the number of rows available for grid cells
func (v *Viewer) mapHeight() int {
	return max(v.buf.Height()-1, 0)
}

// cellAt picks glyph and style for one grid cell
func (v *Viewer) cellAt(p core.Point) (rune, tcell.Style) {
	switch n := v.idx.Count(p); {
	case n == 0:
		return RuneEmpty, StyleEmpty
	case n > 1:
		return RuneOverlap, StyleOverlap
	case v.summary.HasIntact && vmath.RectContains(v.summary.Intact.Rect, p.X, p.Y):
		return RuneIntact, StyleIntact
	default:
		return RuneSingle, StyleSingle
	}
}

// Draw composes the visible window and the status line, then shows it
func (v *Viewer) Draw() {
	w, h := v.screen.Size()
	if w != v.buf.Width() || h != v.buf.Height() {
		v.buf.Resize(w, h)
		v.clamp()
	} else {
		v.buf.Clear(StyleEmpty)
	}

	rows := v.mapHeight()
	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < w; sx++ {
			p := core.Point{X: v.bounds.TL.X + v.offX + sx, Y: v.bounds.TL.Y + v.offY + sy}
			if !vmath.RectContains(v.bounds, p.X, p.Y) {
				continue
			}
			r, style := v.cellAt(p)
			v.buf.SetContent(sx, sy, r, style)
		}
	}

	if h > 0 {
		for x := 0; x < w; x++ {
			v.buf.SetContent(x, h-1, ' ', StyleStatus)
		}
		v.buf.SetString(0, h-1, v.status(), StyleStatus)
	}

	v.buf.Flush(v.screen)
}

func (v *Viewer) status() string {
	return fmt.Sprintf(" claims %d  dupes %d  part two: %s  @%d,%d  [hjkl/arrows pan, q quit]",
		v.summary.Claims, v.summary.Dupes, v.summary.PartTwo(),
		v.bounds.TL.X+v.offX, v.bounds.TL.Y+v.offY)
}

// Pan moves the window by (dx, dy) cells, clamped to the bounding box
func (v *Viewer) Pan(dx, dy int) {
	v.offX += dx
	v.offY += dy
	v.clamp()
}

func (v *Viewer) clamp() {
	maxX := max(v.bounds.W()-v.buf.Width(), 0)
	maxY := max(v.bounds.H()-v.mapHeight(), 0)
	v.offX = min(max(v.offX, 0), maxX)
	v.offY = min(max(v.offY, 0), maxY)
}

// HandleEvent applies one terminal event, false means quit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		page := max(v.mapHeight(), 1)
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.Pan(-1, 0)
		case tcell.KeyRight:
			v.Pan(1, 0)
		case tcell.KeyUp:
			v.Pan(0, -1)
		case tcell.KeyDown:
			v.Pan(0, 1)
		case tcell.KeyPgUp:
			v.Pan(0, -page)
		case tcell.KeyPgDn:
			v.Pan(0, page)
		case tcell.KeyHome:
			v.offX, v.offY = 0, 0
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				v.Pan(-1, 0)
			case 'l':
				v.Pan(1, 0)
			case 'k':
				v.Pan(0, -1)
			case 'j':
				v.Pan(0, 1)
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

// Run draws and processes events until quit
// The screen is finalized on return, including on panic
func (v *Viewer) Run() {
	defer v.screen.Fini()

	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.HandleEvent(ev) {
			return
		}
		v.Draw()
	}
}
