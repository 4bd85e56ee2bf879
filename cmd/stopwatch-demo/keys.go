package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Action is a user command applied to the watch list
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionToggle
	ActionToggleAll
	ActionReset
	ActionAdd
	ActionRewind
	ActionSet
	ActionQuit
)

var actionNames = map[string]Action{
	"next":       ActionNext,
	"prev":       ActionPrev,
	"toggle":     ActionToggle,
	"toggle_all": ActionToggleAll,
	"reset":      ActionReset,
	"add":        ActionAdd,
	"rewind":     ActionRewind,
	"set":        ActionSet,
	"quit":       ActionQuit,
}

var actionStrings = [...]string{
	ActionNone:      "none",
	ActionNext:      "next",
	ActionPrev:      "prev",
	ActionToggle:    "toggle",
	ActionToggleAll: "toggle_all",
	ActionReset:     "reset",
	ActionAdd:       "add",
	ActionRewind:    "rewind",
	ActionSet:       "set",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if int(a) < len(actionStrings) {
		return actionStrings[a]
	}
	return "none"
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// defaultKeys returns the built-in rune bindings
func defaultKeys() map[rune]Action {
	return map[rune]Action{
		'j': ActionNext,
		'k': ActionPrev,
		' ': ActionToggle,
		'p': ActionToggleAll,
		'r': ActionReset,
		'+': ActionAdd,
		'-': ActionRewind,
		's': ActionSet,
		'q': ActionQuit,
	}
}

// parseKeyBindings resolves a [keys] table of key name → action name into
// rune bindings layered over base. base is not modified.
func parseKeyBindings(base map[rune]Action, raw map[string]string) (map[rune]Action, error) {
	result := make(map[rune]Action, len(base)+len(raw))
	for r, a := range base {
		result[r] = a
	}

	for keyStr, actionName := range raw {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		act, ok := actionNames[strings.ToLower(actionName)]
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action %q", keyStr, actionName)
		}
		result[r] = act
	}

	return result, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected single character or alias, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// keyAction maps a key press to an action. Arrows, Enter, Escape and Ctrl-C
// are fixed; runes go through the bindings.
func keyAction(key tcell.Key, r rune, bindings map[rune]Action) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyDown:
		return ActionNext
	case tcell.KeyUp:
		return ActionPrev
	case tcell.KeyEnter:
		return ActionToggle
	case tcell.KeyRune:
		return bindings[r]
	}
	return ActionNone
}

// helpLine lists rune bindings in a stable order for the footer
func helpLine(bindings map[rune]Action) string {
	parts := make([]string, 0, len(bindings))
	for r, a := range bindings {
		key := string(r)
		if r == ' ' {
			key = "space"
		}
		parts = append(parts, key+":"+a.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, "  ")
}
