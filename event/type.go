package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is never emitted
	EventNone EventType = iota

	// EventBallCollision signals the ball overlapped a collider this frame
	// Trigger: CollisionSystem, once per overlapping collider
	// Consumer: OpponentSystem | Payload: *BallCollisionPayload
	EventBallCollision

	// EventBallRespawn signals the ball left the board and was recentred
	// Trigger: BoundsSystem
	// Consumer: none in core, host may react | Payload: nil
	EventBallRespawn
)

func (t EventType) String() string {
	switch t {
	case EventBallCollision:
		return "BallCollision"
	case EventBallRespawn:
		return "BallRespawn"
	default:
		return "None"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick the event was emitted in
}
