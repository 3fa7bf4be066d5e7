package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the UI reacts to.
type KeyMap struct {
	Quit       key.Binding
	ToggleHelp key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	Submit    key.Binding
	Backspace key.Binding
	Back      key.Binding

	Stop key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	bind := func(keys []string, helpKey, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
	}
	return KeyMap{
		Quit:       bind([]string{"q", "esc", "ctrl+c"}, "q/esc", "quit"),
		ToggleHelp: bind([]string{"h", "?"}, "h/?", "toggle help"),
		Up:         bind([]string{"up", "k"}, "↑/k", "up"),
		Down:       bind([]string{"down", "j"}, "↓/j", "down"),
		Select:     bind([]string{"enter", " "}, "enter", "choose activity"),
		Submit:     bind([]string{"enter"}, "enter", "start (empty runs until stopped)"),
		Backspace:  bind([]string{"backspace"}, "⌫", "delete"),
		Back:       bind([]string{"esc"}, "esc", "back to menu"),
		Stop:       bind([]string{"s", "enter"}, "s/enter", "stop"),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	return h
}

// contextualKeys is the help.KeyMap shown for one UI state.
type contextualKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextualKeys) ShortHelp() []key.Binding  { return c.short }
func (c contextualKeys) FullHelp() [][]key.Binding { return c.full }

// ForState returns the bindings that apply in s.
func (k KeyMap) ForState(s state) help.KeyMap {
	switch s {
	case stateMenu:
		return contextualKeys{
			short: []key.Binding{k.Up, k.Down, k.Select, k.ToggleHelp, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Select}, {k.ToggleHelp, k.Quit}},
		}
	case stateTimedInput:
		return contextualKeys{
			short: []key.Binding{k.Submit, k.Backspace, k.Back},
			full:  [][]key.Binding{{k.Submit, k.Backspace}, {k.Back, k.Quit}},
		}
	case stateRunning:
		return contextualKeys{
			short: []key.Binding{k.Stop, k.Quit, k.ToggleHelp},
			full:  [][]key.Binding{{k.Stop, k.Quit}, {k.ToggleHelp}},
		}
	default:
		return contextualKeys{
			short: []key.Binding{k.ToggleHelp, k.Quit},
			full:  [][]key.Binding{{k.ToggleHelp, k.Quit}},
		}
	}
}
