package notifications

import "github.com/thenoetrevino/emojiboard/internal/tui/state"

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

// severityOf maps a state level to a render severity
func severityOf(level state.NotificationLevel) Severity {
	if level == state.LevelError {
		return Error
	}
	return Info
}
