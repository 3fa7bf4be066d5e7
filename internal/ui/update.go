package ui

import (
	"strconv"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/keep-busy/internal/config"
)

// maxInputDigits limits the minutes field.
const maxInputDigits = 4

// tickMsg is sent when the countdown timer ticks
type tickMsg time.Time

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.State != stateTimedInput && key.Matches(km, m.keys.ToggleHelp) {
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	switch m.State {
	case stateMenu:
		return updateMenu(msg, m)
	case stateTimedInput:
		return updateTimedInput(msg, m)
	case stateRunning:
		return updateRunning(msg, m)
	}
	return m, nil
}

func updateMenu(msg tea.Msg, m Model) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := menuItems()
	switch {
	case key.Matches(km, m.keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(km, m.keys.Down):
		if m.Selected < len(items)-1 {
			m.Selected++
		}
	case key.Matches(km, m.keys.Select):
		if m.Selected == len(items)-1 {
			return m, tea.Quit
		}
		m.Profile = config.Profiles[m.Selected]
		m.State = stateTimedInput
		m.Input = ""
		m.ErrorMessage = ""
	case key.Matches(km, m.keys.Quit):
		if m.ShowHelp {
			m.ShowHelp = false
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func updateTimedInput(msg tea.Msg, m Model) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Submit):
		var d time.Duration
		if m.Input != "" {
			minutes, err := strconv.Atoi(m.Input)
			if err != nil {
				m.ErrorMessage = "Invalid duration"
				return m, nil
			}
			if minutes <= 0 {
				m.ErrorMessage = "Duration must be positive"
				return m, nil
			}
			d = time.Duration(minutes) * time.Minute
		}
		started, err := m.start(d)
		if err != nil {
			m.ErrorMessage = err.Error()
			m.State = stateMenu
			return m, nil
		}
		return started, tick()
	case key.Matches(km, m.keys.Back):
		m.State = stateMenu
		m.ErrorMessage = ""
	case key.Matches(km, m.keys.Backspace):
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	default:
		s := km.String()
		if len(s) == 1 && unicode.IsDigit(rune(s[0])) && len(m.Input) < maxInputDigits {
			m.Input += s
			m.ErrorMessage = ""
		}
	}
	return m, nil
}

func updateRunning(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Stop):
			if err := m.Keeper.Stop(); err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
			return finished(m)
		case key.Matches(msg, m.keys.Quit):
			if err := m.Keeper.Stop(); err != nil {
				m.ErrorMessage = err.Error()
			}
			return m, tea.Quit
		}
	case tickMsg:
		if !m.Keeper.IsRunning() {
			if err := m.Keeper.Err(); err != nil {
				m.ErrorMessage = err.Error()
			}
			return finished(m)
		}
		return m, tick()
	}
	return m, nil
}

// finished leaves the running view once the profile has stopped.
func finished(m Model) (Model, tea.Cmd) {
	if m.QuitOnStop {
		return m, tea.Quit
	}
	m.State = stateMenu
	m.Duration = 0
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
