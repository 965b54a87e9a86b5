package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
)

// Swatch layout bounds. Blocks grow with the terminal between these.
const (
	maxSwatchWidth  = 24
	maxSwatchHeight = 9
	swatchGap       = 1
)

// renderHeader renders the title line with the palette source on the right.
func renderHeader(m model, width int) string {
	h := components.NewHeader(SafeIcon(IconPalette) + titleStyle.Render("Swatch")).
		WithWidth(width)
	if m.hasPalette {
		h = h.WithRightContent(components.FormatPaletteInfo(m.keyword, m.origin.String()))
	}
	return h.Render()
}

// renderInputView renders the keyword prompt.
func renderInputView(m model, width int) string {
	prompt := inputBoxStyle.Render(m.keywordInput.View())
	hint := hintStyle.Render("Type a keyword and press enter. Try \"ocean\", or anything at all.")

	parts := []string{"", prompt, hint}
	if m.hasPalette {
		parts = append(parts, hintStyle.Render("esc returns to the last palette"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderResolvingView renders the spinner line while a resolve is pending.
func renderResolvingView(m model, width int) string {
	line := fmt.Sprintf("%s Mixing colors for %q", m.spinner.View(), m.pendingKeyword)
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		resolvingStyle.Render(line),
		hintStyle.Render("esc cancels"),
	)
}

// renderPaletteView renders the swatch row plus the description line
// when the terminal is tall enough for it.
func renderPaletteView(m model, width int) string {
	parts := []string{"", renderSwatchRow(m, width)}
	if m.height >= minHeightForDescription {
		desc := descriptionStyle.Width(width).Align(lipgloss.Center).Render(m.current.Description)
		parts = append(parts, "", desc)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSwatchRow lays the five swatches out side by side, sized to the
// available width.
func renderSwatchRow(m model, width int) string {
	// Each bordered swatch spends two cells on its frame.
	inner := (width-swatchGap*(palette.Size-1))/palette.Size - 2
	if inner < components.MinSwatchWidth {
		inner = components.MinSwatchWidth
	}
	if inner > maxSwatchWidth {
		inner = maxSwatchWidth
	}

	height := m.height / 4
	if height < components.MinSwatchHeight {
		height = components.MinSwatchHeight
	}
	if height > maxSwatchHeight {
		height = maxSwatchHeight
	}

	gap := strings.Repeat(" ", swatchGap)
	pieces := make([]string, 0, palette.Size*2-1)
	for i, hex := range m.current.Colors {
		if i > 0 {
			pieces = append(pieces, gap)
		}
		sw := components.NewSwatch(hex, i).
			WithSize(inner, height).
			WithFocus(i == m.focusedSlot).
			WithCopied(i == m.copiedSlot)
		pieces = append(pieces, sw.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pieces...)
}

// renderFooter renders the help footer and the status bar. The help
// footer only appears in the palette view, where its bindings apply.
func renderFooter(m model, width int) string {
	parts := make([]string, 0, 3)
	parts = append(parts, "")
	if m.currentAppMode == ModePalette {
		parts = append(parts, m.help.View(m.keys))
	}

	bar := components.NewStatusBar(width)
	if m.statusBarMessage != "" {
		bar = bar.WithMessage(m.statusBarMessage, m.statusBarMessageType)
	} else {
		bar = bar.
			WithLeftText(components.FormatPaletteInfo(m.keyword, m.origin.String())).
			WithRightText("? help")
	}
	parts = append(parts, bar.Render())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
