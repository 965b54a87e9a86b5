package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsAreCanonical(t *testing.T) {
	// Guards the hand-maintained table: every key lowercase, every color
	// canonical, every description present.
	for key, p := range builtins {
		assert.Equal(t, strings.ToLower(key), key, "catalog key %q must be lowercase", key)
		for i, c := range p.Colors {
			assert.True(t, IsHexColor(c), "catalog %q slot %d: %q is not #rrggbb", key, i, c)
		}
		assert.NotEmpty(t, p.Description, "catalog %q needs a description", key)
	}
}

func TestNewCatalogBuiltins(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	want := []string{
		"autumn", "energy", "forest", "lavender", "love", "midnight",
		"ocean", "peace", "spring", "summer", "sunset", "winter",
	}
	assert.Equal(t, want, c.Keywords())
	assert.Equal(t, len(want), c.Len())
}

func TestLookupCaseFolds(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	canonical, ok := c.Lookup("ocean")
	require.True(t, ok)

	for _, variant := range []string{"OCEAN", "Ocean", "oCeAn"} {
		p, ok := c.Lookup(variant)
		assert.True(t, ok, "variant %q should hit", variant)
		assert.Equal(t, canonical, p)
	}
}

func TestLookupMatchesExactly(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	// Case folding is the only normalization: surrounding whitespace or
	// partial words never match.
	for _, miss := range []string{" ocean", "ocean ", "oce", "oceans", "not-a-keyword", ""} {
		_, ok := c.Lookup(miss)
		assert.False(t, ok, "%q should miss", miss)
	}
}

func TestLookupReturnsValueCopy(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	p, ok := c.Lookup("ocean")
	require.True(t, ok)
	p.Colors[0] = "#000000"
	p.Description = "scribbled over"

	fresh, ok := c.Lookup("ocean")
	require.True(t, ok)
	assert.Equal(t, "#1e3a8a", fresh.Colors[0], "canonical entry must be unaffected by caller mutation")
	assert.Equal(t, "Deep sea blues sinking into dark teal", fresh.Description)
}

func TestNewCatalogExtraEntries(t *testing.T) {
	extra := Entry{
		Keyword: "Rainforest",
		Palette: Palette{
			Colors:      [Size]string{"#0b3d2e", "#14532d", "#15803d", "#4ade80", "#d9f99d"},
			Description: "Wet leaves and canopy light",
		},
	}

	c, err := NewCatalog(extra)
	require.NoError(t, err)

	// Keys are case-folded on the way in and on lookup.
	for _, variant := range []string{"rainforest", "Rainforest", "RAINFOREST"} {
		p, ok := c.Lookup(variant)
		assert.True(t, ok, "variant %q should hit", variant)
		assert.Equal(t, extra.Palette, p)
	}
	assert.Equal(t, len(builtins)+1, c.Len())
}

func TestNewCatalogRejectsBadEntries(t *testing.T) {
	valid := [Size]string{"#0b3d2e", "#14532d", "#15803d", "#4ade80", "#d9f99d"}

	tests := []struct {
		name    string
		entry   Entry
		wantErr string
	}{
		{
			name:    "empty keyword",
			entry:   Entry{Keyword: "", Palette: Palette{Colors: valid}},
			wantErr: "empty keyword",
		},
		{
			name:    "shadows builtin",
			entry:   Entry{Keyword: "Ocean", Palette: Palette{Colors: valid}},
			wantErr: "conflicts with a built-in",
		},
		{
			name: "uppercase hex digits",
			entry: Entry{Keyword: "shout", Palette: Palette{
				Colors: [Size]string{"#0B3D2E", "#14532d", "#15803d", "#4ade80", "#d9f99d"},
			}},
			wantErr: "not of the form",
		},
		{
			name: "missing color",
			entry: Entry{Keyword: "hole", Palette: Palette{
				Colors: [Size]string{"#0b3d2e", "#14532d", "#15803d", "#4ade80", ""},
			}},
			wantErr: "not of the form",
		},
		{
			name: "not hex at all",
			entry: Entry{Keyword: "words", Palette: Palette{
				Colors: [Size]string{"#0b3d2e", "#14532d", "#15803d", "#4ade80", "seafoam"},
			}},
			wantErr: "not of the form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entry)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsHexColor(t *testing.T) {
	valid := []string{"#000000", "#ffffff", "#1e3a8a", "#abcdef"}
	invalid := []string{"", "#FFF", "#FFFFFF", "1e3a8a", "#1e3a8", "#1e3a8a0", "#1g3a8a", " #1e3a8a"}

	for _, s := range valid {
		assert.True(t, IsHexColor(s), "%q should validate", s)
	}
	for _, s := range invalid {
		assert.False(t, IsHexColor(s), "%q should not validate", s)
	}
}
