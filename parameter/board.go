package parameter

// Board geometry in world units, origin at the center, Y up
const (
	// BoardHalfWidth is the horizontal extent used for rendering and respawn
	BoardHalfWidth = 500.0

	// BoardHalfHeight is the vertical extent used for rendering
	BoardHalfHeight = 325.0

	// WallOffsetY is the distance from origin to each wall center
	WallOffsetY = 300.0

	WallWidth     = 1000.0
	WallThickness = 50.0
)
