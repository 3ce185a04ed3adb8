package vmath

import "math"

// Side identifies which face of box B was struck by box A
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
	SideInside // A spans B on the reported axis, no single face struck
)

var sideNames = [...]string{
	SideNone:   "none",
	SideLeft:   "left",
	SideRight:  "right",
	SideTop:    "top",
	SideBottom: "bottom",
	SideInside: "inside",
}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// Horizontal returns true for faces that flip the X component on impact
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Vertical returns true for faces that flip the Y component on impact
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Overlap tests two axis-aligned boxes given by center and full size
// Returns the side of B that A struck, false when the boxes are disjoint
//
// Touching edges do not count as overlap. Per axis, A straddling B's min edge
// reports Left/Bottom, straddling B's max edge reports Right/Top, anything else
// is Inside with infinite depth. The axis with the smaller penetration depth
// wins; an exact tie resolves to the X axis
func Overlap(centerA, sizeA, centerB, sizeB Vec2) (Side, bool) {
	halfA := V2Half(sizeA)
	halfB := V2Half(sizeB)
	aMin, aMax := V2Sub(centerA, halfA), V2Add(centerA, halfA)
	bMin, bMax := V2Sub(centerB, halfB), V2Add(centerB, halfB)

	if !(aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y) {
		return SideNone, false
	}

	xSide, xDepth := SideInside, math.Inf(1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = SideLeft, math.Abs(bMin.X-aMax.X)
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = SideRight, math.Abs(aMin.X-bMax.X)
	}

	ySide, yDepth := SideInside, math.Inf(1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = SideBottom, math.Abs(bMin.Y-aMax.Y)
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = SideTop, math.Abs(aMin.Y-bMax.Y)
	}

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
}
