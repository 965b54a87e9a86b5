package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
)

// setStatusMessage updates the status bar message and schedules clearing
// it after the given duration. The previous clear timer, if any, is
// canceled so an old tick cannot wipe a newer message early.
func (m *model) setStatusMessage(message string, msgType components.MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusBarMessage = message
	m.statusBarMessageType = msgType

	if m.statusBarClearCancel != nil {
		close(m.statusBarClearCancel)
	}

	m.statusBarClearCancel = make(chan struct{})
	captured := m.statusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return clearStatusBarMsg{}
		}
	})
}

// beginResolve switches to the resolving state and kicks off palette
// resolution for keyword.
func beginResolve(m model, keyword string) (model, tea.Cmd) {
	m.currentAppMode = ModeResolving
	m.pendingKeyword = keyword
	m.LogInfo("Resolving palette for %q", keyword)
	return m, tea.Batch(m.spinner.Tick, resolvePaletteCmd(m.resolver, keyword, m.resolveDelay))
}

// handlePaletteResolvedMsg installs a finished palette, unless the user
// canceled or submitted a different keyword while it was in flight.
func handlePaletteResolvedMsg(m model, msg paletteResolvedMsg) (model, tea.Cmd) {
	if m.currentAppMode != ModeResolving || msg.keyword != m.pendingKeyword {
		m.LogDebug("Dropping stale palette for %q", msg.keyword)
		return m, nil
	}

	m.keyword = msg.keyword
	m.current = msg.palette
	m.origin = msg.origin
	m.hasPalette = true
	m.pendingKeyword = ""
	m.focusedSlot = 0
	m.copiedSlot = noCopiedSlot
	m.currentAppMode = ModePalette

	m.LogInfo("Palette for %q ready (%s)", msg.keyword, msg.origin)

	var statusText string
	if msg.origin == palette.OriginCatalog {
		statusText = fmt.Sprintf("Curated palette for %q", msg.keyword)
	} else {
		statusText = fmt.Sprintf("Generated palette for %q", msg.keyword)
	}
	return m, m.setStatusMessage(statusText, components.StatusBarInfo, m.statusTTL)
}

// Update is the heart of the bubbletea program, handling all messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// ctrl+c quits from any mode, even mid-typing.
		if msg.String() == "ctrl+c" {
			m.currentAppMode = ModeQuitting
			m.quittingMessage = "Bye!"
			return m, tea.Quit
		}

		switch m.currentAppMode {
		case ModeInput:
			return handleKeyMsgInputMode(m, msg)
		case ModeResolving:
			return handleKeyMsgResolvingMode(m, msg)
		case ModePalette, ModeLogOverlay:
			return handleKeyMsgGlobal(m, msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case paletteResolvedMsg:
		return handlePaletteResolvedMsg(m, msg)

	case clearStatusBarMsg:
		m.statusBarMessage = ""
		m.copiedSlot = noCopiedSlot
		if m.statusBarClearCancel != nil {
			close(m.statusBarClearCancel)
			m.statusBarClearCancel = nil
		}
		return m, nil

	case logEntryMsg:
		m.appendLogLine(formatLogEntry(msg.entry))
		if m.currentAppMode == ModeLogOverlay {
			m = refreshLogViewport(m)
		}
		return m, waitForLogEntry(m.logChan)

	case spinner.TickMsg:
		// Only spin while something is actually pending.
		if m.currentAppMode == ModeResolving {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.MouseMsg:
		if m.currentAppMode == ModeLogOverlay {
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Relay anything unhandled to the focused text input so cursor
	// blinking and paste events keep working.
	if m.currentAppMode == ModeInput {
		m.keywordInput, cmd = m.keywordInput.Update(msg)
		return m, cmd
	}
	return m, nil
}
