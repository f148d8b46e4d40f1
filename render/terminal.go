package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
)

// TerminalRenderer projects world coordinates onto terminal cells and
// draws entity glyphs. It implements the engine's render surface, so
// sprite components draw through it without knowing about tcell.
type TerminalRenderer struct {
	screen tcell.Screen
	world  core.Rect
	width  int
	height int
	style  tcell.Style
}

// NewTerminalRenderer creates a renderer mapping the world rectangle onto
// the full screen.
func NewTerminalRenderer(screen tcell.Screen, world core.Rect) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		world:  world,
		width:  w,
		height: h,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Resize refreshes the cached screen dimensions after a terminal resize.
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Draw places a glyph at the cell covering the world position. Points
// outside the world are clipped.
func (r *TerminalRenderer) Draw(x, y float64, glyph rune) {
	cx, cy, ok := r.project(x, y)
	if !ok {
		return
	}
	r.screen.SetContent(cx, cy, glyph, nil, r.style)
}

// BeginFrame clears the back buffer.
func (r *TerminalRenderer) BeginFrame() {
	r.screen.Clear()
}

// EndFrame draws the status line and flips the buffer.
func (r *TerminalRenderer) EndFrame(tick uint64, entities int) {
	status := fmt.Sprintf(" tick %d  entities %d ", tick, entities)
	row := r.height - 1
	if row < 0 {
		row = 0
	}
	for i, ch := range status {
		if i >= r.width {
			break
		}
		r.screen.SetContent(i, row, ch, nil, r.style.Reverse(true))
	}
	r.screen.Show()
}

// project maps world coordinates onto screen cells. The bottom row is
// reserved for the status line.
func (r *TerminalRenderer) project(x, y float64) (int, int, bool) {
	if r.world.W <= 0 || r.world.H <= 0 || r.width <= 0 || r.height <= 1 {
		return 0, 0, false
	}
	fx := (x - r.world.X) / r.world.W
	fy := (y - r.world.Y) / r.world.H
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	cx := int(fx * float64(r.width))
	cy := int(fy * float64(r.height-1))
	return cx, cy, true
}

var _ engine.Surface = (*TerminalRenderer)(nil)
