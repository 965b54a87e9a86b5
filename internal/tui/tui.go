package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the palette explorer.
// The alternate screen keeps the user's scrollback clean; the model takes
// over rendering entirely until quit.
func NewProgram(opts Options) *tea.Program {
	return tea.NewProgram(NewModel(opts), tea.WithAltScreen())
}
