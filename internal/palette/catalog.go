package palette

import (
	"fmt"
	"sort"
	"strings"
)

// builtins is the curated keyword table. Keys are lowercase; lookups
// case-fold before matching. The ocean entry is a published constant other
// tooling relies on, so its colors must never change.
var builtins = map[string]Palette{
	"ocean": {
		Colors:      [Size]string{"#1e3a8a", "#3b82f6", "#06b6d4", "#0891b2", "#164e63"},
		Description: "Deep sea blues sinking into dark teal",
	},
	"sunset": {
		Colors:      [Size]string{"#7c2d12", "#c2410c", "#ea580c", "#fb923c", "#fcd34d"},
		Description: "Burnt orange and amber of a fading sky",
	},
	"forest": {
		Colors:      [Size]string{"#14532d", "#166534", "#16a34a", "#4ade80", "#bbf7d0"},
		Description: "Woodland greens from floor to canopy",
	},
	"love": {
		Colors:      [Size]string{"#881337", "#be123c", "#e11d48", "#fb7185", "#fecdd3"},
		Description: "Rose reds and soft blush pinks",
	},
	"peace": {
		Colors:      [Size]string{"#0c4a6e", "#0369a1", "#38bdf8", "#bae6fd", "#f0f9ff"},
		Description: "Calm sky blues drifting toward white",
	},
	"energy": {
		Colors:      [Size]string{"#dc2626", "#ea580c", "#f59e0b", "#eab308", "#84cc16"},
		Description: "Hot reds and citrus brights",
	},
	"spring": {
		Colors:      [Size]string{"#15803d", "#4ade80", "#bbf7d0", "#fbcfe8", "#f472b6"},
		Description: "New-leaf green with a hint of blossom",
	},
	"summer": {
		Colors:      [Size]string{"#0e7490", "#06b6d4", "#67e8f9", "#fde047", "#fb7185"},
		Description: "Poolside cyan, lemon, and coral",
	},
	"autumn": {
		Colors:      [Size]string{"#451a03", "#92400e", "#b45309", "#d97706", "#f59e0b"},
		Description: "Amber, rust, and turning leaves",
	},
	"winter": {
		Colors:      [Size]string{"#1e293b", "#475569", "#94a3b8", "#cbd5e1", "#f1f5f9"},
		Description: "Cold slate and frost",
	},
	"midnight": {
		Colors:      [Size]string{"#020617", "#0f172a", "#1e1b4b", "#312e81", "#4c1d95"},
		Description: "Ink blue and deep violet after dark",
	},
	"lavender": {
		Colors:      [Size]string{"#4c1d95", "#7c3aed", "#a78bfa", "#c4b5fd", "#ede9fe"},
		Description: "Dusky purple fading to pale lilac",
	},
}

// Entry pairs a keyword with the palette it should resolve to. Entries are
// consumed while a Catalog is being built (typically from user config) and
// play no further role afterwards.
type Entry struct {
	Keyword string
	Palette Palette
}

// Catalog is the keyword→palette table consulted before synthesis. It is
// fully built by NewCatalog and never changes afterwards, so lookups are safe
// for concurrent use without locking.
type Catalog struct {
	entries map[string]Palette
}

// NewCatalog builds a catalog from the built-in table plus optional extra
// entries. Extra keywords are case-folded to the catalog's lowercase-key
// convention; their colors must already be canonical lowercase hex (the
// config layer normalizes before handing entries over). An extra entry that
// would shadow a built-in keyword is rejected: the curated table is
// authoritative.
func NewCatalog(extra ...Entry) (*Catalog, error) {
	entries := make(map[string]Palette, len(builtins)+len(extra))
	for k, p := range builtins {
		entries[k] = p
	}

	for _, e := range extra {
		key := strings.ToLower(e.Keyword)
		if key == "" {
			return nil, fmt.Errorf("palette entry has an empty keyword")
		}
		if _, exists := builtins[key]; exists {
			return nil, fmt.Errorf("palette entry %q conflicts with a built-in keyword", key)
		}
		for _, c := range e.Palette.Colors {
			if !IsHexColor(c) {
				return nil, fmt.Errorf("palette entry %q: color %q is not of the form #rrggbb", key, c)
			}
		}
		entries[key] = e.Palette
	}

	return &Catalog{entries: entries}, nil
}

// Lookup returns the palette stored for keyword, matching case-insensitively
// against the catalog's keys with no trimming and no partial matching. The
// boolean distinguishes a miss, which is not an error: it signals the caller
// to fall through to synthesis.
func (c *Catalog) Lookup(keyword string) (Palette, bool) {
	p, ok := c.entries[strings.ToLower(keyword)]
	return p, ok
}

// Keywords returns every catalog key in sorted order.
func (c *Catalog) Keywords() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
