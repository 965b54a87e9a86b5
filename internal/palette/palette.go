package palette

import "regexp"

// Size is the number of colors in every palette. Both the curated catalog and
// the synthesizer produce exactly this many, always.
const Size = 5

// Palette is an ordered set of five hex color strings plus a short
// human-readable description. Palettes are plain values: every lookup or
// synthesis hands the caller a fresh copy it owns outright, and the fixed
// array keeps canonical catalog entries impossible to mutate through a
// returned result.
type Palette struct {
	Colors      [Size]string `json:"colors" yaml:"colors"`
	Description string       `json:"description" yaml:"description"`
}

// hexColorRE is the canonical color form: '#' followed by exactly six
// lowercase hexadecimal digits.
var hexColorRE = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// IsHexColor reports whether s is a canonical lowercase "#rrggbb" string.
func IsHexColor(s string) bool {
	return hexColorRE.MatchString(s)
}
