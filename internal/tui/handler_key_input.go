package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/tui/components"
)

// handleKeyMsgInputMode processes keys while the keyword prompt has
// focus. Printable keys flow into the text input, so only submit and
// cancel are intercepted here. Note that "q" types a letter q.
func handleKeyMsgInputMode(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		// The keyword goes through exactly as typed. Whitespace-only
		// input resolves to nothing useful, so it is refused here, but
		// inner spacing and case are part of the keyword.
		value := m.keywordInput.Value()
		if strings.TrimSpace(value) == "" {
			return m, m.setStatusMessage("Type a keyword first", components.StatusBarWarning, m.statusTTL)
		}
		m.keywordInput.Blur()
		return beginResolve(m, value)

	case key.Matches(msg, m.keys.Cancel):
		// Back to the previous palette, when there is one to go back to.
		if m.hasPalette {
			m.keywordInput.Blur()
			m.currentAppMode = ModePalette
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.keywordInput, cmd = m.keywordInput.Update(msg)
	return m, cmd
}

// handleKeyMsgResolvingMode lets the user bail out of a pending resolve.
// Everything else is ignored until the palette lands.
func handleKeyMsgResolvingMode(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.pendingKeyword = ""
		m.LogDebug("Resolve canceled")
		if m.hasPalette {
			m.currentAppMode = ModePalette
			return m, nil
		}
		m.currentAppMode = ModeInput
		m.keywordInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Quit):
		return quit(m)
	}
	return m, nil
}
