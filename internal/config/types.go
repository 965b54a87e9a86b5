package config

import (
	"fmt"
	"strings"
	"time"

	"swatch/internal/palette"
)

// Config is the top-level configuration structure for swatch.
type Config struct {
	UI       UISettings     `yaml:"ui"`
	Log      LogSettings    `yaml:"log"`
	Output   OutputSettings `yaml:"output"`
	Palettes []PaletteEntry `yaml:"palettes,omitempty"`
}

// UISettings tunes TUI behavior. Durations are plain milliseconds in YAML
// so config files stay free of Go duration syntax.
type UISettings struct {
	ResolveDelayMs     int `yaml:"resolveDelayMs,omitempty"`
	StatusMessageTtlMs int `yaml:"statusMessageTtlMs,omitempty"`
}

// LogSettings controls log verbosity.
type LogSettings struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}

// OutputSettings controls terminal rendering for CLI output.
type OutputSettings struct {
	Color string `yaml:"color,omitempty"` // auto, always, never
}

// PaletteEntry is a user-defined palette keyword. Colors must be exactly
// five #rrggbb strings; hex digits fold to lowercase on the way in and the
// catalog rejects anything else.
type PaletteEntry struct {
	Keyword     string   `yaml:"keyword"`
	Colors      []string `yaml:"colors"`
	Description string   `yaml:"description,omitempty"`
}

// ResolveDelay returns the artificial resolve delay used by the TUI to make
// the loading state visible.
func (c Config) ResolveDelay() time.Duration {
	return time.Duration(c.UI.ResolveDelayMs) * time.Millisecond
}

// StatusMessageTTL returns how long transient status messages stay on screen.
func (c Config) StatusMessageTTL() time.Duration {
	return time.Duration(c.UI.StatusMessageTtlMs) * time.Millisecond
}

// PaletteEntries converts the configured palettes into catalog entries.
// Hex digits are folded to lowercase and a missing description gets a
// serviceable default; everything else is validated by palette.NewCatalog
// so errors carry the offending keyword.
func (c Config) PaletteEntries() ([]palette.Entry, error) {
	entries := make([]palette.Entry, 0, len(c.Palettes))
	for _, p := range c.Palettes {
		if len(p.Colors) != palette.Size {
			return nil, fmt.Errorf("palette entry %q: want %d colors, got %d", p.Keyword, palette.Size, len(p.Colors))
		}
		var colors [palette.Size]string
		for i, c := range p.Colors {
			colors[i] = strings.ToLower(c)
		}
		desc := p.Description
		if desc == "" {
			desc = fmt.Sprintf("Custom palette for %q", p.Keyword)
		}
		entries = append(entries, palette.Entry{
			Keyword: p.Keyword,
			Palette: palette.Palette{Colors: colors, Description: desc},
		})
	}
	return entries, nil
}
