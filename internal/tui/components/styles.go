package components

import (
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/color"
)

// Spacing units (based on 4px)
const (
	SpaceXS = 1 // 4px
	SpaceSM = 2 // 8px
	SpaceMD = 3 // 12px

	// Component dimensions
	MinSwatchWidth  = 9
	MinSwatchHeight = 3
)

// Base Styles - Foundation for all components
var (
	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(color.ColorMuted)

	// Header Styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(color.ColorText).
			Padding(0, SpaceSM)

	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(color.ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Copy().
				Foreground(color.ColorSuccess).
				Bold(true)

	StatusBarErrorStyle = StatusBarStyle.Copy().
				Foreground(color.ColorError).
				Bold(true)

	StatusBarWarningStyle = StatusBarStyle.Copy().
				Foreground(color.ColorWarning)

	StatusBarInfoStyle = StatusBarStyle.Copy().
				Foreground(color.ColorInfo)

	// Swatch Styles
	SwatchBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(color.ColorBorder)

	SwatchFocusedBorderStyle = lipgloss.NewStyle().
					Border(lipgloss.ThickBorder()).
					BorderForeground(color.ColorAccent)

	SwatchLabelStyle = lipgloss.NewStyle().
				Foreground(color.ColorMuted).
				Align(lipgloss.Center)

	SwatchFocusedLabelStyle = lipgloss.NewStyle().
				Foreground(color.ColorAccent).
				Bold(true).
				Align(lipgloss.Center)
)

// TruncateString truncates a string to the specified display width.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	for lipgloss.Width(s) > width && len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s
}
