package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ScoringKeyMap defines the key bindings of the scoring screen. Letters
// and digits go to the segment input, so every command uses a key that
// cannot be part of a segment code.
type ScoringKeyMap struct {
	Throw     key.Binding
	Next      key.Binding
	Undo      key.Binding
	Redeliver key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoringKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Throw, k.Next, k.Undo, k.Help, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoringKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Throw, k.Next, k.Undo, k.Redeliver},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultScoringKeyMap returns default key bindings.
func DefaultScoringKeyMap() ScoringKeyMap {
	return ScoringKeyMap{
		Throw: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "throw"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next player"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z", "ctrl+u"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redeliver: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "resend last hit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
