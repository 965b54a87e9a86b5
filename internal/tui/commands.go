package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/palette"
	"swatch/pkg/logging"
)

// resolvePaletteCmd resolves keyword after the configured delay. The
// delay is presentation, not work: resolution is instant, the pause
// gives the spinner a beat so the reveal reads as deliberate.
func resolvePaletteCmd(r *palette.Resolver, keyword string, delay time.Duration) tea.Cmd {
	resolve := func() tea.Msg {
		p, origin := r.ResolveOrigin(keyword)
		return paletteResolvedMsg{keyword: keyword, palette: p, origin: origin}
	}
	if delay <= 0 {
		return resolve
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resolve()
	})
}

// waitForLogEntry returns a tea.Cmd that blocks until the next log
// entry arrives. The logEntryMsg handler re-arms it after each message
// so the channel is drained continuously.
func waitForLogEntry(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}
