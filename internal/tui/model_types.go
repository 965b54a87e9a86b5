package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
	"swatch/pkg/logging"
)

// AppMode defines the overall state or view of the application.
// NOTE: The ordering MUST stay in-sync with the String() method for a
// stable representation.
type AppMode int

const (
	// ModeInitializing is the state before the first window size arrives.
	ModeInitializing AppMode = iota
	// ModeInput is when the user is typing a keyword.
	ModeInput
	// ModeResolving is the brief wait while a keyword turns into colors.
	ModeResolving
	// ModePalette is the primary view showing the five swatches.
	ModePalette
	// ModeLogOverlay is when the full-screen activity log is active.
	ModeLogOverlay
	// ModeQuitting is when the application is shutting down.
	ModeQuitting
)

// String makes AppMode satisfy the fmt.Stringer interface.
func (a AppMode) String() string {
	switch a {
	case ModeInitializing:
		return "Initializing"
	case ModeInput:
		return "Input"
	case ModeResolving:
		return "Resolving"
	case ModePalette:
		return "Palette"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Misc. shared constants.
const (
	// maxActivityLogLines caps the in-memory activity log so a long
	// session cannot grow it indefinitely.
	maxActivityLogLines = 200

	// noCopiedSlot means no swatch is currently showing the copied mark.
	noCopiedSlot = -1
)

// clipboardWriteAll is swappable so tests can run without a system
// clipboard.
var clipboardWriteAll = clipboard.WriteAll

// Options carries everything the command layer wires into the TUI.
type Options struct {
	// Resolver turns keywords into palettes, catalog entries included.
	Resolver *palette.Resolver
	// InitialKeyword, when set, is resolved as soon as the UI is ready.
	InitialKeyword string
	// ResolveDelay is the artificial wait before a palette appears.
	ResolveDelay time.Duration
	// StatusMessageTTL is how long status bar messages stay visible.
	StatusMessageTTL time.Duration
	// LogChan delivers log entries for the activity log overlay.
	LogChan <-chan logging.LogEntry
}

// model represents the state of the entire TUI application.
type model struct {
	resolver *palette.Resolver

	currentAppMode AppMode
	width          int
	height         int

	// --- Current Palette ---
	keyword    string          // Keyword that produced the displayed palette.
	current    palette.Palette // Palette on screen.
	origin     palette.Origin  // Catalog hit or synthesized.
	hasPalette bool            // False until the first resolve completes.

	// pendingKeyword is the keyword a resolve is in flight for. A stale
	// result whose keyword no longer matches is dropped.
	pendingKeyword string

	// initialKeyword, when non-empty, is resolved as soon as the first
	// window size arrives.
	initialKeyword string

	// --- Swatch Focus ---
	focusedSlot int // Zero-based index of the focused swatch.
	copiedSlot  int // Slot showing the copied mark, noCopiedSlot when none.

	// --- Widgets ---
	keywordInput textinput.Model
	spinner      spinner.Model
	help         help.Model
	keys         KeyMap

	// --- Status Bar ---
	statusBarMessage     string
	statusBarMessageType components.MessageType
	statusBarClearCancel chan struct{}

	// --- Activity Log ---
	activityLog          []string
	activityLogDirty     bool
	logViewport          viewport.Model
	logViewportLastWidth int
	logChan              <-chan logging.LogEntry

	// --- Behavior knobs from config ---
	resolveDelay time.Duration
	statusTTL    time.Duration

	showFullHelp    bool
	quittingMessage string
}
