package palette

import (
	"fmt"
	"math"
)

// Per-slot progression: each of the five slots is a little lighter, a little
// less saturated, and rotated a little further around the color wheel than
// the one before it.
const (
	baseSaturation = 70 // percent, slot 0
	saturationStep = 10
	baseLightness  = 30 // percent, slot 0
	lightnessStep  = 15
	hueStep        = 25 // degrees between adjacent slots
)

// Synthesize derives a palette for any keyword the catalog does not know.
// It is a pure function: no randomness, no state, and the same keyword always
// yields byte-identical output. Every string is a valid input; the empty
// string hashes to 0 and produces the hue-0 palette.
//
// The keyword is hashed to a base hue, then each slot takes its
// hue/saturation/lightness from the fixed progression above and is converted
// to a lowercase #rrggbb string. The description carries the keyword exactly
// as supplied.
func Synthesize(keyword string) Palette {
	// Widen before abs: MinInt32 is the one hash whose negation overflows.
	h64 := int64(hashKeyword(keyword))
	if h64 < 0 {
		h64 = -h64
	}
	baseHue := int(h64 % 360)

	var colors [Size]string
	for i := 0; i < Size; i++ {
		hue := (baseHue + hueStep*i) % 360
		sat := baseSaturation - saturationStep*i
		light := baseLightness + lightnessStep*i

		r, g, b := hslToRGB(float64(hue)/360, float64(sat)/100, float64(light)/100)
		colors[i] = fmt.Sprintf("#%02x%02x%02x", quantize(r), quantize(g), quantize(b))
	}

	return Palette{
		Colors:      colors,
		Description: fmt.Sprintf("A harmonious palette inspired by %q", keyword),
	}
}

// hashKeyword folds the keyword's code points into a 32-bit signed integer
// with the shift-subtract-add recurrence h = h*31 + c. The int32 width is
// load-bearing: palettes must reproduce across implementations, and Go's
// wrapping two's-complement arithmetic supplies exactly the truncation the
// scheme requires at every step.
func hashKeyword(keyword string) int32 {
	var h int32
	for _, r := range keyword {
		h = (h << 5) - h + int32(r)
	}
	return h
}

// hslToRGB is the standard colorimetric HSL→RGB conversion over normalized
// inputs (h, s, l all in [0,1]). When s == 0 the color is achromatic and
// every channel equals the lightness.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return hueToChannel(p, q, h+1.0/3.0),
		hueToChannel(p, q, h),
		hueToChannel(p, q, h-1.0/3.0)
}

// hueToChannel evaluates the piecewise hue-to-channel function at t, with t
// first wrapped back into [0,1).
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	} else if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// quantize maps a normalized channel value onto 0..255, rounding half away
// from zero. Channel values are never negative, so this matches plain
// round-to-nearest everywhere it can be observed.
func quantize(v float64) int {
	return int(math.Round(v * 255))
}
