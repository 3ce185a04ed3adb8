package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// HeadlessFrames is the default tick count for -headless runs
	HeadlessFrames = 3600
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System priorities, lower runs first
const (
	PriorityPlayer    = 10
	PriorityBall      = 20
	PriorityCollision = 30
	PriorityBounds    = 35
	PriorityOpponent  = 40
)
