package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MessageType identifies the severity of a status bar message.
type MessageType int

const (
	StatusBarNeutral MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
	StatusBarInfo
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width:       width,
		ShowMessage: false,
	}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = true
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// ClearMessage removes the status message
func (s *StatusBar) ClearMessage() *StatusBar {
	s.ShowMessage = false
	s.Message = ""
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()

	var content string
	if s.ShowMessage && s.Message != "" {
		content = s.Message
	} else {
		// Show left/right text
		if s.LeftText != "" && s.RightText != "" {
			leftWidth := lipgloss.Width(s.LeftText)
			rightWidth := lipgloss.Width(s.RightText)
			padding := s.Width - leftWidth - rightWidth - SpaceSM*2 // Account for style padding

			if padding > 0 {
				content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
			} else {
				// Not enough space, just show left text
				content = TruncateString(s.LeftText, s.Width-SpaceSM*2)
			}
		} else if s.LeftText != "" {
			content = s.LeftText
		} else if s.RightText != "" {
			content = s.RightText
		}
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if s.ShowMessage {
		switch s.MessageType {
		case StatusBarSuccess:
			return StatusBarSuccessStyle
		case StatusBarError:
			return StatusBarErrorStyle
		case StatusBarWarning:
			return StatusBarWarningStyle
		case StatusBarInfo:
			return StatusBarInfoStyle
		default:
			return StatusBarStyle
		}
	}
	return StatusBarStyle
}

// FormatPaletteInfo formats the current palette source for the status bar
func FormatPaletteInfo(keyword, origin string) string {
	if keyword == "" {
		return "No palette yet"
	}
	return fmt.Sprintf("%q · %s", keyword, origin)
}
