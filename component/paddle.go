package component

// PlayerComponent marks the keyboard-controlled paddle
type PlayerComponent struct{}

// OpponentState is the opponent controller's state
type OpponentState uint8

const (
	// OpponentIdle waits for the next ball collision
	OpponentIdle OpponentState = iota
	// OpponentChasing moves toward the predicted ball height
	OpponentChasing
)

func (s OpponentState) String() string {
	if s == OpponentChasing {
		return "chasing"
	}
	return "idle"
}

// OpponentComponent marks the computer-controlled paddle
type OpponentComponent struct {
	State OpponentState
}

// GoalReached reports whether the opponent is idle
func (o OpponentComponent) GoalReached() bool {
	return o.State == OpponentIdle
}
