package color

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Semantic colors with consistent light/dark mode support. UI chrome
// (headers, status bars, help text) uses these; swatch colors never do.
var (
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
)

// Initialize pins the background assumption used by adaptive colors.
// Detection inside the TUI's alternate screen is unreliable, so the
// caller decides (config, flag, or the in-app toggle).
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// SetMode applies the configured color mode to the global renderer.
// "auto" keeps environment detection (NO_COLOR, TERM), "always" forces
// TrueColor output even when piped, and "never" strips color entirely.
func SetMode(mode string) error {
	switch mode {
	case "auto":
		// Leave the detected profile in place.
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always, or never)", mode)
	}
	return nil
}

// ForegroundFor picks black or white text for the given background so
// hex labels stay legible on any swatch. Unparseable input gets white,
// which reads fine on the mid-to-dark colors synthesis produces.
func ForegroundFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	_, _, l := c.Hsl()
	if l > 0.55 {
		return "#000000"
	}
	return "#ffffff"
}
