package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(64, 64, 191)   // Paddle/wall blue (0.25, 0.25, 0.75)
	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbOpponent   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBall       = tcell.NewRGBColor(160, 32, 240)  // Purple
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
)

// Glyphs per entity kind
const (
	GlyphWall   = '█'
	GlyphPaddle = '▌'
	GlyphBall   = '●'
)
