package input

// State emulates held keys from press events
// Terminals report repeats but no releases, so an action stays held
// for holdFrames ticks after its most recent press
type State struct {
	holdFrames int64
	lastPress  [actionCount]int64
	pressed    [actionCount]bool
}

// NewState creates a state with the given hold window, minimum one frame
func NewState(holdFrames int64) *State {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &State{holdFrames: holdFrames}
}

// Press records a press of action at frame
// A movement press releases the opposite direction
func (s *State) Press(action Action, frame int64) {
	if action >= actionCount {
		return
	}
	s.lastPress[action] = frame
	s.pressed[action] = true
	s.Release(action.Opposite())
}

// Release ends the hold of action immediately
func (s *State) Release(action Action) {
	if action == ActionNone || action >= actionCount {
		return
	}
	s.pressed[action] = false
}

// Held reports whether action counts as held during frame
// A press at frame f covers frames f through f+holdFrames-1
func (s *State) Held(action Action, frame int64) bool {
	if action >= actionCount || !s.pressed[action] {
		return false
	}
	return frame >= s.lastPress[action] && frame-s.lastPress[action] < s.holdFrames
}

// Reset releases every action
func (s *State) Reset() {
	s.pressed = [actionCount]bool{}
}
