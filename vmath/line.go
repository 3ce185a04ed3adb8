package vmath

import (
	"errors"
	"math"
)

var ErrDegenerateLine = errors.New("degenerate line: points share x coordinate")

// LinearEquation is y = M*x + B
type LinearEquation struct {
	M float64
	B float64
}

// At evaluates the line at x
func (l LinearEquation) At(x float64) float64 {
	return l.M*x + l.B
}

// FitLine returns the line through p1 and p2
// Vertical lines have no slope-intercept form and return ErrDegenerateLine
func FitLine(p1, p2 Vec2) (LinearEquation, error) {
	dx := p2.X - p1.X
	if dx == 0 {
		return LinearEquation{}, ErrDegenerateLine
	}
	m := (p2.Y - p1.Y) / dx
	b := p2.Y - p2.X*m
	// Subnormal dx can still overflow the slope
	if math.IsInf(m, 0) || math.IsNaN(m) || math.IsNaN(b) {
		return LinearEquation{}, ErrDegenerateLine
	}
	return LinearEquation{M: m, B: b}, nil
}
