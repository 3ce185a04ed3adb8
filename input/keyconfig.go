package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML values
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames is the reverse of tcell.KeyNames, lower-cased
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadBindings parses action -> key name lists into a sparse override KeyTable
// Key names are single runes, rune aliases or tcell key names ("Up", "Esc", "Ctrl-C")
func LoadBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for actionName, keys := range bindings {
		action, ok := ParseAction(actionName)
		if !ok {
			return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownAction, actionName, strings.Join(ActionNames(), ", "))
		}
		for _, name := range keys {
			if err := kt.bind(name, action); err != nil {
				return nil, fmt.Errorf("binding %s: %w", actionName, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(name string, action Action) error {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		kt.Runes[r] = action
		return nil
	}
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		kt.Runes[r] = action
		return nil
	}
	if k, ok := specialKeyNames[strings.ToLower(name)]; ok {
		kt.SpecialKeys[k] = action
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownKey, name)
}
