// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/codetype/internal/session"
)

type keyMap struct {
	Quit    key.Binding
	Next    key.Binding
	Newline key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next file"),
		),
		Newline: key.NewBinding(
			key.WithKeys("enter", "backspace"),
			key.WithHelp("enter", "new line"),
		),
	}
}

// translate converts a Bubble Tea key message into session keystrokes.
func (k keyMap) translate(msg tea.KeyMsg) []session.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return []session.Key{{Code: session.KeyEscape}}
	case key.Matches(msg, k.Next):
		return []session.Key{{Code: session.KeyTab}}
	case key.Matches(msg, k.Newline):
		if msg.Type == tea.KeyBackspace {
			return []session.Key{{Code: session.KeyBackspace}}
		}
		return []session.Key{{Code: session.KeyEnter}}
	}
	if msg.Alt {
		return []session.Key{{Code: session.KeyOther, Name: msg.String()}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []session.Key{session.RuneKey(' ')}
	case tea.KeyRunes:
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.RuneKey(r))
		}
		return keys
	}
	return []session.Key{{Code: session.KeyOther, Name: msg.String()}}
}

func (k keyMap) help() string {
	out := ""
	for i, b := range []key.Binding{k.Next, k.Newline, k.Quit} {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
