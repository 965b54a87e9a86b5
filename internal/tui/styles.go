package tui

import (
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/color"
)

// Constants for TUI behavior and internal logic.
const (
	// minHeightForDescription defines the minimum terminal height (in lines)
	// required to show the description line under the swatches. Shorter
	// terminals get swatches only.
	minHeightForDescription = 14
)

// Icons used in headers and the activity log. Plain Unicode so they
// render without a patched font.
const (
	IconCheck   = "✔" // U+2714
	IconCross   = "❌" // U+274C
	IconWarning = "⚠" // U+26A0 without VS16
	IconScroll  = "📜" // U+1F4DC
	IconInfo    = "ℹ" // U+2139 without VS16
	IconPalette = "🎨" // U+1F3A8
)

// Styles for the TUI, defined using the lipgloss library. Semantic
// colors come from the color package; swatch blocks never use these.
var (
	// appStyle defines the overall padding for the application view.
	appStyle = lipgloss.NewStyle().Padding(0, 1)

	// titleStyle is for the product name in header and prompt views.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(color.ColorAccent)

	// descriptionStyle renders the palette description line.
	descriptionStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(color.ColorMuted)

	// inputBoxStyle frames the keyword prompt.
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color.ColorAccent).
			Padding(0, 1)

	// hintStyle renders secondary guidance under the input box.
	hintStyle = lipgloss.NewStyle().Foreground(color.ColorMuted)

	// resolvingStyle renders the wait line while a palette is mixed.
	resolvingStyle = lipgloss.NewStyle().Foreground(color.ColorText)

	// logOverlayStyle frames the full-screen activity log.
	logOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color.ColorBorder).
			Padding(0, 1)

	// logPanelTitleStyle is for the title of the log overlay.
	logPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(color.ColorInfo)

	// Log line styles by severity.
	logErrorStyle = lipgloss.NewStyle().Foreground(color.ColorError)
	logWarnStyle  = lipgloss.NewStyle().Foreground(color.ColorWarning)
	logInfoStyle  = lipgloss.NewStyle().Foreground(color.ColorText)
	logDebugStyle = lipgloss.NewStyle().Foreground(color.ColorMuted)
)
