package tui

import (
	"swatch/internal/palette"
	"swatch/pkg/logging"
)

// paletteResolvedMsg reports that a keyword finished resolving.
type paletteResolvedMsg struct {
	keyword string
	palette palette.Palette
	origin  palette.Origin
}

// clearStatusBarMsg clears the status bar message and the transient
// copied mark together, so both disappear on the same tick.
type clearStatusBarMsg struct{}

// logEntryMsg wraps one entry drained from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
}
