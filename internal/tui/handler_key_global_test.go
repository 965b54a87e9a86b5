package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
)

// newTestModel builds a model the way the command layer does, with a
// zero resolve delay so tests never wait.
func newTestModel(t *testing.T) model {
	t.Helper()
	cat, err := palette.NewCatalog()
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	m := NewModel(Options{
		Resolver:         palette.NewResolver(cat),
		ResolveDelay:     0,
		StatusMessageTTL: time.Second,
	})
	m.width = 100
	m.height = 30
	return m
}

// showPalette puts a resolved palette on screen so key handlers have
// something to act on.
func showPalette(m model, keyword string) model {
	m.keyword = keyword
	m.current, m.origin = m.resolver.ResolveOrigin(keyword)
	m.hasPalette = true
	m.currentAppMode = ModePalette
	return m
}

// stubClipboard replaces the clipboard writer for the duration of the
// test and records what was written.
func stubClipboard(t *testing.T, fail error) *[]string {
	t.Helper()
	orig := clipboardWriteAll
	var writes []string
	clipboardWriteAll = func(s string) error {
		if fail != nil {
			return fail
		}
		writes = append(writes, s)
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })
	return &writes
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Tests for the unexported helper nextFocus located in
// handler_key_global.go. It is responsible for wrapping focus
// navigation across the five swatch slots.
func TestNextFocus(t *testing.T) {
	// Forward movement.
	if got := nextFocus(0, 1, 5); got != 1 {
		t.Errorf("forward: expected 1, got %d", got)
	}

	// Backward movement.
	if got := nextFocus(2, -1, 5); got != 1 {
		t.Errorf("backward: expected 1, got %d", got)
	}

	// Wrap-around forward.
	if got := nextFocus(4, 1, 5); got != 0 {
		t.Errorf("wrap forward: expected 0, got %d", got)
	}

	// Wrap-around backward.
	if got := nextFocus(0, -1, 5); got != 4 {
		t.Errorf("wrap backward: expected 4, got %d", got)
	}

	// Degenerate count.
	if got := nextFocus(3, 1, 0); got != 0 {
		t.Errorf("zero count: expected 0, got %d", got)
	}
}

func TestFocusNavigationKeys(t *testing.T) {
	m := showPalette(newTestModel(t), "ocean")

	m, _ = handleKeyMsgGlobal(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.focusedSlot != 1 {
		t.Fatalf("right: expected slot 1, got %d", m.focusedSlot)
	}

	m, _ = handleKeyMsgGlobal(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.focusedSlot != 0 {
		t.Fatalf("left: expected slot 0, got %d", m.focusedSlot)
	}

	// Digit keys jump straight to a slot.
	m, _ = handleKeyMsgGlobal(m, keyRune('4'))
	if m.focusedSlot != 3 {
		t.Fatalf("jump: expected slot 3, got %d", m.focusedSlot)
	}

	// h/l mirror the arrows.
	m, _ = handleKeyMsgGlobal(m, keyRune('l'))
	if m.focusedSlot != 4 {
		t.Fatalf("l: expected slot 4, got %d", m.focusedSlot)
	}
	m, _ = handleKeyMsgGlobal(m, keyRune('h'))
	if m.focusedSlot != 3 {
		t.Fatalf("h: expected slot 3, got %d", m.focusedSlot)
	}
}

func TestCopyFocusedSwatch(t *testing.T) {
	writes := stubClipboard(t, nil)
	m := showPalette(newTestModel(t), "ocean")
	m.focusedSlot = 2

	m, cmd := handleKeyMsgGlobal(m, keyRune('y'))

	if len(*writes) != 1 || (*writes)[0] != "#06b6d4" {
		t.Fatalf("expected clipboard write of #06b6d4, got %v", *writes)
	}
	if m.copiedSlot != 2 {
		t.Errorf("expected copied mark on slot 2, got %d", m.copiedSlot)
	}
	if m.statusBarMessageType != components.StatusBarSuccess {
		t.Errorf("expected success status, got %v", m.statusBarMessageType)
	}
	if cmd == nil {
		t.Error("expected a clear timer command")
	}
}

func TestCopyAllColors(t *testing.T) {
	writes := stubClipboard(t, nil)
	m := showPalette(newTestModel(t), "ocean")

	m, _ = handleKeyMsgGlobal(m, keyRune('c'))

	want := "#1e3a8a #3b82f6 #06b6d4 #0891b2 #164e63"
	if len(*writes) != 1 || (*writes)[0] != want {
		t.Fatalf("expected clipboard write %q, got %v", want, *writes)
	}
	if m.statusBarMessage != "Copied 5 colors" {
		t.Errorf("unexpected status message %q", m.statusBarMessage)
	}
}

func TestCopyFailureIsSoft(t *testing.T) {
	stubClipboard(t, errors.New("no display"))
	m := showPalette(newTestModel(t), "ocean")

	m, _ = handleKeyMsgGlobal(m, keyRune('y'))

	if m.copiedSlot != noCopiedSlot {
		t.Errorf("copied mark should not appear on failure, got slot %d", m.copiedSlot)
	}
	if m.statusBarMessageType != components.StatusBarError {
		t.Errorf("expected error status, got %v", m.statusBarMessageType)
	}
	if !m.hasPalette || m.currentAppMode != ModePalette {
		t.Error("clipboard failure must not disturb the palette view")
	}
}

func TestNewKeywordReturnsToInput(t *testing.T) {
	m := showPalette(newTestModel(t), "ocean")

	m, cmd := handleKeyMsgGlobal(m, keyRune('n'))

	if m.currentAppMode != ModeInput {
		t.Fatalf("expected input mode, got %v", m.currentAppMode)
	}
	if got := m.keywordInput.Value(); got != "" {
		t.Errorf("input should be reset, got %q", got)
	}
	if cmd == nil {
		t.Error("expected blink command for the focused input")
	}
}

func TestLogOverlayToggle(t *testing.T) {
	m := showPalette(newTestModel(t), "ocean")
	m.LogInfo("something happened")

	m, _ = handleKeyMsgGlobal(m, keyRune('L'))
	if m.currentAppMode != ModeLogOverlay {
		t.Fatalf("expected log overlay, got %v", m.currentAppMode)
	}

	m, _ = handleKeyMsgGlobal(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentAppMode != ModePalette {
		t.Fatalf("esc should close the overlay, got %v", m.currentAppMode)
	}
}

func TestQuitFromPaletteView(t *testing.T) {
	m := showPalette(newTestModel(t), "ocean")

	m, cmd := handleKeyMsgGlobal(m, keyRune('q'))

	if m.currentAppMode != ModeQuitting {
		t.Fatalf("expected quitting mode, got %v", m.currentAppMode)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
}
