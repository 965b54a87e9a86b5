package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/color"
)

// checkMark flags a swatch whose hex value was just copied.
const checkMark = "✓"

// Swatch renders one palette color as a bordered block with the hex
// code printed on the color itself and the slot number underneath.
// The hex label foreground flips between black and white so it stays
// readable on light and dark swatches alike.
type Swatch struct {
	Hex     string
	Index   int // zero-based slot position
	Width   int // inner block width, border excluded
	Height  int // inner block height, border excluded
	Focused bool
	Copied  bool
}

// NewSwatch creates a swatch for one palette color.
func NewSwatch(hex string, index int) *Swatch {
	return &Swatch{
		Hex:    hex,
		Index:  index,
		Width:  MinSwatchWidth,
		Height: MinSwatchHeight,
	}
}

// WithSize sets the inner block dimensions.
func (s *Swatch) WithSize(width, height int) *Swatch {
	s.Width = width
	s.Height = height
	return s
}

// WithFocus marks the swatch as the focused slot.
func (s *Swatch) WithFocus(focused bool) *Swatch {
	s.Focused = focused
	return s
}

// WithCopied shows the transient copied check mark on the block.
func (s *Swatch) WithCopied(copied bool) *Swatch {
	s.Copied = copied
	return s
}

// Render returns the styled swatch block with its slot caption.
func (s *Swatch) Render() string {
	width := s.Width
	if width < MinSwatchWidth {
		width = MinSwatchWidth
	}
	height := s.Height
	if height < MinSwatchHeight {
		height = MinSwatchHeight
	}

	label := s.Hex
	if s.Copied {
		label = checkMark + " " + s.Hex
	}

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color(color.ForegroundFor(s.Hex))).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(TruncateString(label, width))

	borderStyle := SwatchBorderStyle
	labelStyle := SwatchLabelStyle
	if s.Focused {
		borderStyle = SwatchFocusedBorderStyle
		labelStyle = SwatchFocusedLabelStyle
	}

	// Caption width matches the bordered block so the digit centers.
	caption := labelStyle.Width(width + 2).Render(strconv.Itoa(s.Index + 1))

	return lipgloss.JoinVertical(lipgloss.Center, borderStyle.Render(block), caption)
}
