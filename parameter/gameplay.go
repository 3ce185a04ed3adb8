package parameter

// Ball
const (
	// Per-frame displacement magnitudes, multiplied by the ball's direction signs
	BallSpeedX       = 4.0
	BallSpeedY       = 1.0
	SimpleBallSpeedX = 1.0
	SimpleBallSpeedY = 0.0

	// BallSize is the collision box; the drawn circle is cosmetic
	BallSize = 1.0
)

// Paddles
const (
	PaddleWidth  = 50.0
	PaddleHeight = 100.0

	PlayerX   = 400.0
	OpponentX = -400.0

	// PaddleStep is the per-frame player movement per held direction
	PaddleStep = 10.0
)

// Opponent heuristic
const (
	// OpponentDeadZone is the alignment tolerance around the predicted Y
	OpponentDeadZone = 5.0

	// OpponentStep is the per-frame chase movement
	OpponentStep = 10.0

	// OpponentBound clamps the opponent paddle center to [-OpponentBound, OpponentBound]
	OpponentBound = 250.0
)

// Input
const (
	// InputHoldFrames is how long a key press counts as held; terminals never report release
	InputHoldFrames = 12
)
