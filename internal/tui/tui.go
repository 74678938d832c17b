package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive movie list for the store at dir. The list loads
// asynchronously behind a spinner; a storage failure surfaces as the returned
// error after the program exits.
func Run(dir, workspace string) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := newAppModel(dir, workspace)
	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := out.(appModel); ok && fm.loadErr != nil {
		return fm.loadErr
	}
	return nil
}
