package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
	"swatch/pkg/logging"
)

// nextFocus returns the focused slot moved by delta with wraparound.
func nextFocus(current, delta, count int) int {
	if count <= 0 {
		return 0
	}
	next := (current + delta) % count
	if next < 0 {
		next += count
	}
	return next
}

// quit moves the application into its terminal state.
func quit(m model) (model, tea.Cmd) {
	m.currentAppMode = ModeQuitting
	m.quittingMessage = "Bye!"
	return m, tea.Quit
}

// handleKeyMsgGlobal processes keys for the palette view and the log
// overlay, the modes where no text input owns the keyboard.
func handleKeyMsgGlobal(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	// Overlay first: it captures scrolling and its own dismissal.
	if m.currentAppMode == ModeLogOverlay {
		switch {
		case key.Matches(msg, m.keys.ToggleLog), key.Matches(msg, m.keys.Cancel):
			m.currentAppMode = ModePalette
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return quit(m)
		}
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return quit(m)

	case key.Matches(msg, m.keys.Left):
		m.focusedSlot = nextFocus(m.focusedSlot, -1, palette.Size)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.focusedSlot = nextFocus(m.focusedSlot, +1, palette.Size)
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		if s := msg.String(); len(s) == 1 {
			if slot := int(s[0] - '1'); slot >= 0 && slot < palette.Size {
				m.focusedSlot = slot
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return handleCopyFocused(m)

	case key.Matches(msg, m.keys.CopyAll):
		return handleCopyAll(m)

	case key.Matches(msg, m.keys.NewKeyword):
		m.currentAppMode = ModeInput
		m.keywordInput.Reset()
		m.keywordInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleLog):
		m.currentAppMode = ModeLogOverlay
		m = resizeLogViewport(m)
		m = refreshLogViewport(m)
		return m, nil

	case key.Matches(msg, m.keys.ToggleDark):
		dark := !lipgloss.HasDarkBackground()
		lipgloss.SetHasDarkBackground(dark)
		m.LogDebug("Dark background: %v", dark)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showFullHelp = !m.showFullHelp
		m.help.ShowAll = m.showFullHelp
		return m, nil
	}

	return m, nil
}

// handleCopyFocused writes the focused hex code to the clipboard.
// Clipboard trouble never takes the palette down: the failure lands in
// the status bar and the activity log, nothing else changes.
func handleCopyFocused(m model) (model, tea.Cmd) {
	if !m.hasPalette {
		return m, nil
	}
	hex := m.current.Colors[m.focusedSlot]
	if err := clipboardWriteAll(hex); err != nil {
		logging.Error("tui", err, "clipboard copy failed")
		m.LogError("Copy %s failed: %v", hex, err)
		return m, m.setStatusMessage("Clipboard unavailable", components.StatusBarError, m.statusTTL)
	}
	m.copiedSlot = m.focusedSlot
	m.LogInfo("Copied %s", hex)
	return m, m.setStatusMessage(fmt.Sprintf("Copied %s", hex), components.StatusBarSuccess, m.statusTTL)
}

// handleCopyAll writes all five hex codes, space separated.
func handleCopyAll(m model) (model, tea.Cmd) {
	if !m.hasPalette {
		return m, nil
	}
	all := strings.Join(m.current.Colors[:], " ")
	if err := clipboardWriteAll(all); err != nil {
		logging.Error("tui", err, "clipboard copy failed")
		m.LogError("Copy all failed: %v", err)
		return m, m.setStatusMessage("Clipboard unavailable", components.StatusBarError, m.statusTTL)
	}
	m.LogInfo("Copied all %d colors", palette.Size)
	return m, m.setStatusMessage(fmt.Sprintf("Copied %d colors", palette.Size), components.StatusBarSuccess, m.statusTTL)
}
