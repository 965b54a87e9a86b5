package palette

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    int32
	}{
		{"", 0},
		{"a", 97},
		{"abc", 96354},
		{"hello", 99162322},
		{"xyzzy", 114548376},
		{"golang", -1240339754}, // wraps through the int32 boundary
		{"café", 3045921},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.keyword), func(t *testing.T) {
			assert.Equal(t, tt.want, hashKeyword(tt.keyword))
		})
	}
}

// Golden palettes pin the full pipeline: hash, hue derivation, HSL→RGB
// conversion, and hex rendering. Any drift in any stage shows up here.
func TestSynthesizeGolden(t *testing.T) {
	tests := []struct {
		keyword string
		colors  [Size]string
	}{
		{
			keyword: "",
			colors:  [Size]string{"#821717", "#b8672e", "#ccbb66", "#ccd9a6", "#e3edde"},
		},
		{
			keyword: "xyzzy",
			colors:  [Size]string{"#821742", "#b8302e", "#cc9266", "#d9d1a6", "#e9edde"},
		},
		{
			keyword: "twilight",
			colors:  [Size]string{"#6d1782", "#b82e9a", "#cc668b", "#d9a8a6", "#ede5de"},
		},
		{
			// Negative hash: exercises the widen-then-abs path.
			keyword: "golang",
			colors:  [Size]string{"#698217", "#5eb82e", "#66cc6d", "#a6d9be", "#deedec"},
		},
		{
			// Non-ASCII input hashes by code point.
			keyword: "café",
			colors:  [Size]string{"#82175d", "#b82e4e", "#cc7966", "#d9c4a6", "#ededde"},
		},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.keyword), func(t *testing.T) {
			got := Synthesize(tt.keyword)
			assert.Equal(t, tt.colors, got.Colors)
		})
	}
}

func TestSynthesizeDescription(t *testing.T) {
	assert.Equal(t, `A harmonious palette inspired by "xyzzy"`, Synthesize("xyzzy").Description)
	// The description keeps the keyword exactly as supplied.
	assert.Equal(t, `A harmonious palette inspired by "XyZzY"`, Synthesize("XyZzY").Description)
	assert.Equal(t, `A harmonious palette inspired by ""`, Synthesize("").Description)
}

func TestSynthesizeDeterministic(t *testing.T) {
	keywords := []string{
		"",
		"xyzzy",
		"crimson tide",
		"日本",
		strings.Repeat("swatch", 100),
	}

	for _, kw := range keywords {
		first := Synthesize(kw)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Synthesize(kw), "keyword %q must synthesize identically on every call", kw)
		}
	}
}

func TestSynthesizeColorFormat(t *testing.T) {
	keywords := []string{"", "a", "zz", "hello world", "überraschung", "🦀", "-", "  "}

	for _, kw := range keywords {
		p := Synthesize(kw)
		for i, c := range p.Colors {
			assert.True(t, IsHexColor(c), "keyword %q slot %d: %q is not #rrggbb", kw, i, c)
		}
		assert.NotEmpty(t, p.Description)
	}
}

func TestSynthesizeSensitivity(t *testing.T) {
	// Not a strict property of the hash, but these pairs are known to land on
	// different base hues, so their palettes must differ.
	pairs := [][2]string{
		{"abc", "abd"},
		{"xyzzy", "Xyzzy"},
		{"hello", "Hello"},
	}

	for _, pair := range pairs {
		a, b := Synthesize(pair[0]), Synthesize(pair[1])
		assert.NotEqual(t, a.Colors, b.Colors, "%q and %q should not collide", pair[0], pair[1])
	}
}

// TestSynthesizeSlotDerivation recomputes each slot's HSL independently and
// converts it with go-colorful, checking the shipped conversion against a
// second implementation of the same standard formula. Rounding may differ by
// at most one step per channel.
func TestSynthesizeSlotDerivation(t *testing.T) {
	const keyword = "xyzzy"

	h64 := int64(hashKeyword(keyword))
	if h64 < 0 {
		h64 = -h64
	}
	baseHue := int(h64 % 360)
	require.Equal(t, 336, baseHue)

	p := Synthesize(keyword)

	for i := 0; i < Size; i++ {
		hue := float64((baseHue + 25*i) % 360)
		sat := float64(70-10*i) / 100
		light := float64(30+15*i) / 100

		wantR, wantG, wantB := colorful.Hsl(hue, sat, light).RGB255()

		var gotR, gotG, gotB int
		_, err := fmt.Sscanf(p.Colors[i], "#%2x%2x%2x", &gotR, &gotG, &gotB)
		require.NoError(t, err, "slot %d: %q did not parse", i, p.Colors[i])

		assert.InDelta(t, int(wantR), gotR, 1, "slot %d red", i)
		assert.InDelta(t, int(wantG), gotG, 1, "slot %d green", i)
		assert.InDelta(t, int(wantB), gotB, 1, "slot %d blue", i)
	}
}

func TestQuantizeBounds(t *testing.T) {
	assert.Equal(t, 0, quantize(0))
	assert.Equal(t, 255, quantize(1))
	assert.Equal(t, 128, quantize(0.5019607843137255)) // 128/255 exactly
}

func TestHSLToRGBAchromatic(t *testing.T) {
	r, g, b := hslToRGB(0.42, 0, 0.6)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
	assert.Equal(t, 0.6, r)
}
