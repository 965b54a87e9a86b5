package tui

import tea "github.com/charmbracelet/bubbletea"

// handleWindowSizeMsg records the new terminal dimensions. It also
// transitions out of ModeInitializing once the size is known, resolving
// the initial keyword when one was given on the command line.
func handleWindowSizeMsg(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	m = resizeLogViewport(m)
	if m.currentAppMode == ModeLogOverlay {
		m = refreshLogViewport(m)
	}

	if m.currentAppMode == ModeInitializing {
		if m.initialKeyword != "" {
			keyword := m.initialKeyword
			m.initialKeyword = ""
			return beginResolve(m, keyword)
		}
		m.currentAppMode = ModeInput
	}
	return m, nil
}
