package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/color"
)

// NewModel constructs the initial model with sensible defaults.
func NewModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "ocean, sunset, or anything at all"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(color.ColorAccent)

	return model{
		resolver:         opts.Resolver,
		currentAppMode:   ModeInitializing,
		initialKeyword:   opts.InitialKeyword,
		focusedSlot:      0,
		copiedSlot:       noCopiedSlot,
		keywordInput:     ti,
		spinner:          s,
		help:             help.New(),
		keys:             DefaultKeyMap(),
		activityLog:      make([]string, 0),
		activityLogDirty: true,
		logViewport:      viewport.New(0, 0),
		logChan:          opts.LogChan,
		resolveDelay:     opts.ResolveDelay,
		statusTTL:        opts.StatusMessageTTL,
	}
}
