// Package palette maps keywords to five-color palettes.
//
// Resolution has two paths. A curated catalog answers a fixed set of
// well-known keywords ("ocean", "sunset", ...) with hand-picked palettes;
// every other keyword is synthesized deterministically, so asking for the
// same word twice always returns the same five colors, on any machine.
//
// # Synthesis
//
// The keyword's code points are folded into a signed 32-bit hash with the
// classic h*31+c recurrence. The absolute value of the hash picks a base hue,
// and each of the five slots steps 25° further around the wheel while
// trading saturation for lightness (70/30 down to 30/90). Slots are converted
// HSL→RGB with the standard piecewise formula and rendered as lowercase
// #rrggbb. The 32-bit wraparound is deliberate and must not be widened:
// reproducibility across implementations depends on it.
//
// # Contracts
//
// Every palette has exactly Size colors matching ^#[0-9a-f]{6}$. Resolution
// is total over strings (the empty keyword yields the hue-0 palette) and has
// no failure modes; a catalog miss is a signal, not an error. The catalog is
// immutable after construction and lookups return value copies, so nothing a
// caller does to a result can leak back into the table.
package palette
