package tui

import (
	"fmt"
	"strings"

	"swatch/pkg/logging"
)

// The functions in this file give handlers a uniform way to append to
// the activity log while enforcing length limits and a consistent
// prefix format. Having them as methods on *model keeps access to
// shared state simple and avoids a separate logger instance.

// LogInfo appends an informational message to the activity log.
func (m *model) LogInfo(format string, a ...interface{}) {
	m.appendLogLine("[INFO] " + fmt.Sprintf(format, a...))
}

// LogDebug appends a debug-level message to the activity log.
func (m *model) LogDebug(format string, a ...interface{}) {
	m.appendLogLine("[DEBUG] " + fmt.Sprintf(format, a...))
}

// LogWarn appends a warning message to the activity log.
func (m *model) LogWarn(format string, a ...interface{}) {
	m.appendLogLine("[WARN] " + fmt.Sprintf(format, a...))
}

// LogError appends an error message to the activity log.
func (m *model) LogError(format string, a ...interface{}) {
	m.appendLogLine("[ERROR] " + fmt.Sprintf(format, a...))
}

// appendLogLine is a small helper that performs the actual slice append
// and enforces the maxActivityLogLines invariant.
func (m *model) appendLogLine(line string) {
	if m == nil {
		return
	}
	m.activityLog = append(m.activityLog, line)
	if len(m.activityLog) > maxActivityLogLines {
		m.activityLog = m.activityLog[len(m.activityLog)-maxActivityLogLines:]
	}
	m.activityLogDirty = true
}

// formatLogEntry renders a structured entry from the logging channel in
// the same shape the model's own Log helpers produce, so the overlay
// styles both identically.
func formatLogEntry(entry logging.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", entry.Level)
	if entry.Subsystem != "" {
		fmt.Fprintf(&b, "[%s] ", entry.Subsystem)
	}
	b.WriteString(entry.Message)
	if entry.Err != nil {
		fmt.Fprintf(&b, ": %v", entry.Err)
	}
	return b.String()
}
