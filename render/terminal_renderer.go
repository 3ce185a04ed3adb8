package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

// TerminalRenderer draws the board onto a tcell screen
// The bottom row holds the status line, everything above is the board
type TerminalRenderer struct {
	screen tcell.Screen
	view   Viewport
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, halfWidth, halfHeight float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		view:   Viewport{HalfWidth: halfWidth, HalfHeight: halfHeight},
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size, call on tcell.EventResize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.view.Cols = max(r.width, 1)
	r.view.Rows = max(r.height-1, 1)
}

// Viewport returns the current world to cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// RenderFrame draws walls, paddles, ball and status line, then shows the screen
func (r *TerminalRenderer) RenderFrame(world *engine.World) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	c := world.Components

	walls := world.Query().With(c.Wall).With(c.Transform).Execute()
	for _, e := range walls {
		if tr, ok := c.Transform.Get(e); ok {
			r.drawBox(tr.Translation, tr.Scale, GlyphWall, defaultStyle.Foreground(RgbWall))
		}
	}

	for _, e := range c.Player.All() {
		if tr, ok := c.Transform.Get(e); ok {
			r.drawBox(tr.Translation, tr.Scale, GlyphPaddle, defaultStyle.Foreground(RgbPlayer))
		}
	}
	for _, e := range c.Opponent.All() {
		if tr, ok := c.Transform.Get(e); ok {
			r.drawBox(tr.Translation, tr.Scale, GlyphPaddle, defaultStyle.Foreground(RgbOpponent))
		}
	}

	// Ball last, always a single cell
	for _, e := range c.Ball.All() {
		tr, ok := c.Transform.Get(e)
		if !ok || !r.view.Contains(tr.Translation) {
			continue
		}
		x, y := r.view.CellX(tr.Translation.X), r.view.CellY(tr.Translation.Y)
		r.screen.SetContent(x, y, GlyphBall, nil, defaultStyle.Foreground(RgbBall))
	}

	r.drawStatusBar(world, defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBox(center, size vmath.Vec2, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := r.view.Box(center, size)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(world *engine.World, defaultStyle tcell.Style) {
	if r.height < 2 {
		return
	}
	res := engine.GetResourceStore(world)
	line := fmt.Sprintf("%s frame=%d %s", res.Config.Variant, world.FrameNumber(), res.Status.String())

	style := defaultStyle.Foreground(RgbStatusBar)
	y := r.height - 1
	x := 0
	for _, ch := range line {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
