package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// resizeLogViewport fits the overlay viewport to the current window.
func resizeLogViewport(m model) model {
	frameW := appStyle.GetHorizontalFrameSize() + logOverlayStyle.GetHorizontalFrameSize()
	frameH := appStyle.GetVerticalFrameSize() + logOverlayStyle.GetVerticalFrameSize()

	w := m.width - frameW
	h := m.height - frameH - 1 // one line for the overlay title
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.logViewport.Width = w
	m.logViewport.Height = h
	return m
}

// refreshLogViewport re-renders the viewport content when new lines
// arrived or the width changed, keeping the scroll pinned to the bottom
// when it already was there.
func refreshLogViewport(m model) model {
	widthChanged := m.logViewportLastWidth != m.logViewport.Width
	if !m.activityLogDirty && !widthChanged {
		return m
	}
	atBottom := m.logViewport.AtBottom()
	m.logViewport.SetContent(prepareLogContent(m.activityLog, m.logViewport.Width))
	m.logViewportLastWidth = m.logViewport.Width
	m.activityLogDirty = false
	if atBottom {
		m.logViewport.GotoBottom()
	}
	return m
}

// renderLogOverlay renders the full-screen activity log.
func renderLogOverlay(m model) string {
	title := logPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll • L or esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.logViewport.View())

	width := m.width - appStyle.GetHorizontalFrameSize() - logOverlayStyle.GetHorizontalFrameSize()
	if width < 0 {
		width = 0
	}
	return logOverlayStyle.Copy().
		Width(width).
		Render(content)
}

// prepareLogContent truncates long lines to avoid viewport wrapping and
// applies color styles based on log level markers.
func prepareLogContent(lines []string, maxWidth int) string {
	if maxWidth <= 0 {
		styled := make([]string, len(lines))
		for i, l := range lines {
			styled[i] = styleLogLine(l)
		}
		return strings.Join(styled, "\n")
	}
	out := make([]string, len(lines))
	for i, raw := range lines {
		line := raw
		if runewidth.StringWidth(line) > maxWidth {
			line = runewidth.Truncate(line, maxWidth-1, "") + "…"
		}
		out[i] = styleLogLine(line)
	}
	return strings.Join(out, "\n")
}

// styleLogLine returns the line wrapped in the style matching its
// severity marker. The check order runs from more specific to more
// general to avoid false positives.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return logErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return logWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return logDebugStyle.Render(l)
	default:
		return logInfoStyle.Render(l)
	}
}
