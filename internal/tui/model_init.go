package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts cursor blinking and the log channel drain. Resolving an
// initial keyword waits for the first window size so the swatches can
// lay out against real dimensions.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := waitForLogEntry(m.logChan); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
