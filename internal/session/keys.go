// Package session implements the typing session state machine.
package session

import "fmt"

// KeyCode identifies the platform key class of a keystroke.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyTab
	KeyOther
)

// Key is one keystroke from the input channel.
type Key struct {
	Code KeyCode
	Rune rune
	// Name describes unrecognised keys in log output.
	Name string
}

// RuneKey returns a character keystroke.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return fmt.Sprintf("%q", k.Rune)
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "esc"
	case KeyTab:
		return "tab"
	}
	if k.Name != "" {
		return k.Name
	}
	return "unknown"
}

// Action is what a keystroke asks the session to do.
type Action int

const (
	ActionIgnore Action = iota
	ActionAppend
	ActionNewline
	ActionQuit
	ActionNext
)

// Classify maps a keystroke to a session action. Only printable ASCII is
// appended; Backspace inserts a line break rather than deleting.
func Classify(k Key) Action {
	switch k.Code {
	case KeyRune:
		if k.Rune >= ' ' && k.Rune <= '~' {
			return ActionAppend
		}
	case KeyEnter, KeyBackspace:
		return ActionNewline
	case KeyEscape:
		return ActionQuit
	case KeyTab:
		return ActionNext
	}
	return ActionIgnore
}
