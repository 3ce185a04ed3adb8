package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// Viewport maps world coordinates onto a grid of terminal cells
// World Y grows upward, screen rows grow downward
type Viewport struct {
	Cols, Rows            int
	HalfWidth, HalfHeight float64
}

// CellX returns the column containing world x, clamped to the grid
func (v Viewport) CellX(x float64) int {
	c := int(math.Floor((x + v.HalfWidth) * float64(v.Cols) / (2 * v.HalfWidth)))
	return clampInt(c, 0, v.Cols-1)
}

// CellY returns the row containing world y, clamped to the grid
func (v Viewport) CellY(y float64) int {
	r := int(math.Floor((v.HalfHeight - y) * float64(v.Rows) / (2 * v.HalfHeight)))
	return clampInt(r, 0, v.Rows-1)
}

// Box returns the inclusive cell rectangle covered by a centered box
// A box smaller than one cell still covers its center cell
func (v Viewport) Box(center, size vmath.Vec2) (x0, y0, x1, y1 int) {
	half := vmath.V2Half(size)
	x0 = v.CellX(center.X - half.X)
	x1 = v.CellX(center.X + half.X)
	y0 = v.CellY(center.Y + half.Y)
	y1 = v.CellY(center.Y - half.Y)
	return x0, y0, x1, y1
}

// Contains reports whether world point p lies inside the mapped area
func (v Viewport) Contains(p vmath.Vec2) bool {
	return math.Abs(p.X) <= v.HalfWidth && math.Abs(p.Y) <= v.HalfHeight
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
