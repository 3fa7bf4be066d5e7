package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/keepalive"
)

// RunnerFactory builds the activity loop for the chosen profile.
type RunnerFactory func(p config.Profile) (keepalive.Runner, error)

// Model holds the current state of the UI, including user input and the
// running profile.
type Model struct {
	State        state
	Selected     int
	Input        string
	Profile      config.Profile
	Keeper       *keepalive.Keeper
	NewRunner    RunnerFactory
	ErrorMessage string
	StartTime    time.Time
	Duration     time.Duration
	ShowHelp     bool
	// QuitOnStop exits the program when the run ends instead of returning
	// to the menu.
	QuitOnStop bool

	keys KeyMap
	help help.Model
}

// InitialModel returns the initial model for the TUI.
func InitialModel(keeper *keepalive.Keeper, newRunner RunnerFactory) Model {
	return Model{
		State:     stateMenu,
		Keeper:    keeper,
		NewRunner: newRunner,
		keys:      DefaultKeys(),
		help:      NewHelpModel(),
	}
}

// Start launches p right away, bypassing the menu. A zero duration runs
// until stopped.
func (m Model) Start(p config.Profile, d time.Duration) (Model, error) {
	m.Profile = p
	return m.start(d)
}

func (m Model) start(d time.Duration) (Model, error) {
	r, err := m.NewRunner(m.Profile)
	if err != nil {
		return m, err
	}
	if d > 0 {
		err = m.Keeper.StartTimed(r, d)
	} else {
		err = m.Keeper.StartIndefinite(r)
	}
	if err != nil {
		return m, err
	}

	m.State = stateRunning
	m.StartTime = time.Now()
	m.Duration = d
	m.ErrorMessage = ""
	return m, nil
}

// menuItems lists the profiles followed by the quit entry.
func menuItems() []string {
	items := make([]string, 0, len(config.Profiles)+1)
	for _, p := range config.Profiles {
		items = append(items, "Simulate "+string(p))
	}
	return append(items, "Quit")
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.State == stateRunning {
		return tick()
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// TimeRemaining returns the remaining duration of a timed run
func (m Model) TimeRemaining() time.Duration {
	if m.State != stateRunning || m.Duration <= 0 {
		return 0
	}
	remaining := m.Duration - time.Since(m.StartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}
