// Package color centralizes terminal color behavior for swatch.
//
// It owns three small concerns:
//
//   - Mode selection: honoring the configured "auto", "always", or "never"
//     color mode by pinning the lipgloss color profile (auto keeps the
//     environment detection, which already respects NO_COLOR and TERM).
//   - Light/dark rendering: Initialize pins the background assumption that
//     lipgloss adaptive colors key off, since detection inside the alternate
//     screen is unreliable and the TUI offers an explicit toggle.
//   - Contrast: ForegroundFor picks black or white text for an arbitrary
//     swatch background so hex labels stay readable on any generated color.
//
// The semantic colors exported here (Accent, Success, ...) are the only ones
// UI chrome should use; palette colors themselves always come from the
// palette package untouched.
package color
