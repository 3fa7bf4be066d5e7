package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run drives m until the user quits, then stops any profile still running.
func Run(m Model, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(Model); ok && fm.Keeper != nil && fm.Keeper.IsRunning() {
		if stopErr := fm.Keeper.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}
	return err
}
