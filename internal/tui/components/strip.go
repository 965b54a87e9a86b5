package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Strip renders palette colors as a single row of adjacent blocks.
// It is the compact rendering shared by the CLI commands.
type Strip struct {
	Colors     []string
	BlockWidth int
	Gap        int
}

// NewStrip creates a strip for the given colors.
func NewStrip(colors []string) *Strip {
	return &Strip{
		Colors:     colors,
		BlockWidth: 4,
		Gap:        1,
	}
}

// WithBlockWidth sets the width of each color block.
func (s *Strip) WithBlockWidth(width int) *Strip {
	s.BlockWidth = width
	return s
}

// WithGap sets the spacing between blocks.
func (s *Strip) WithGap(gap int) *Strip {
	s.Gap = gap
	return s
}

// Render returns the colored blocks joined on one line.
func (s *Strip) Render() string {
	width := s.BlockWidth
	if width < 1 {
		width = 1
	}
	gap := s.Gap
	if gap < 0 {
		gap = 0
	}

	blocks := make([]string, 0, len(s.Colors))
	for _, hex := range s.Colors {
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render(strings.Repeat(" ", width))
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, strings.Repeat(" ", gap))
}
