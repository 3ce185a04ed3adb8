package input

import "sort"

// Action is a game command a key resolves to
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionQuit
	ActionRestart

	actionCount
)

// actionRegistry maps canonical action names used in key bindings
var actionRegistry = map[string]Action{
	"none":    ActionNone,
	"up":      ActionUp,
	"down":    ActionDown,
	"quit":    ActionQuit,
	"restart": ActionRestart,
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// Opposite returns the reverse direction of a movement action, ActionNone otherwise
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	}
	return ActionNone
}

// ParseAction resolves a binding name to its action
func ParseAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
