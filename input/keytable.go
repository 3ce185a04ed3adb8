package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'k': ActionUp,
			'w': ActionUp,
			'j': ActionDown,
			's': ActionDown,
			'q': ActionQuit,
			'r': ActionRestart,
		},
	}
}

// Lookup resolves a key event, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge overlays bindings from other, ActionNone entries unbind the key
func (kt *KeyTable) Merge(other *KeyTable) {
	for k, a := range other.SpecialKeys {
		if a == ActionNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = a
	}
	for r, a := range other.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}
