package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI according to the current model state.
func (m model) View() string {
	switch m.currentAppMode {
	case ModeQuitting:
		if m.quittingMessage == "" {
			return ""
		}
		return m.quittingMessage + "\n"
	case ModeInitializing:
		return "Initializing... (waiting for window size)"
	case ModeLogOverlay:
		return appStyle.Render(renderLogOverlay(m))
	}

	contentWidth := m.width - appStyle.GetHorizontalFrameSize()
	if contentWidth < 20 {
		contentWidth = 20
	}

	header := renderHeader(m, contentWidth)

	var body string
	switch m.currentAppMode {
	case ModeInput:
		body = renderInputView(m, contentWidth)
	case ModeResolving:
		body = renderResolvingView(m, contentWidth)
	case ModePalette:
		body = renderPaletteView(m, contentWidth)
	}

	footer := renderFooter(m, contentWidth)

	// Pin the footer to the bottom edge when there is room to spare.
	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	innerHeight := m.height - appStyle.GetVerticalFrameSize()
	filler := innerHeight - lipgloss.Height(content) - lipgloss.Height(footer)
	if filler > 0 {
		content += strings.Repeat("\n", filler)
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content, footer))
}
