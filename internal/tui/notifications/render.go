package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// maxToastWidth keeps long messages from spanning the whole screen
const maxToastWidth = 48

// Render renders a toast: a compact rounded pill with the message
func Render(severity Severity, message string, p colors.Palette) string {
	s := severity.style(p)

	content := message
	if s.icon != "" {
		content = s.icon + " " + message
	}

	// Border (2) and horizontal padding (4) surround the text
	content = ansi.Truncate(content, maxToastWidth-6, "…")

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.background)).
		Padding(0, 2).
		Render(content)
}

// RenderFromState renders a toast from a state.Notification
func RenderFromState(n state.Notification, p colors.Palette) string {
	return Render(severityOf(n.Level), n.Message, p)
}
