package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// KeyMap defines the key bindings used while a game is running.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Tap         key.Binding
	Recalibrate key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Tap, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Tap, k.Recalibrate},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "tilt left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "tilt right"),
		),
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "tap"),
		),
		Recalibrate: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recalibrate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Tilt directions produced by the keyboard.
const (
	TiltNone  = 0
	TiltLeft  = -1
	TiltRight = 1
)

// MapKey translates a key message to a game action and a tilt direction.
// At most one of the two is set.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, TiltNone
	case key.Matches(msg, k.Tap):
		return core.ActionTap, TiltNone
	case key.Matches(msg, k.Recalibrate):
		return core.ActionRecalibrate, TiltNone
	case key.Matches(msg, k.Left):
		return core.ActionNone, TiltLeft
	case key.Matches(msg, k.Right):
		return core.ActionNone, TiltRight
	}
	return core.ActionNone, TiltNone
}
