package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/emojiboard/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	CellStyle     lipgloss.Style // One emoji in the printed layout
)

func init() {
	Init(config.LightPalette())
}

// Init initializes all CLI styles with the given palette
func Init(p config.Palette) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Surface)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Surface))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Subtle))

	CellStyle = lipgloss.NewStyle().
		Padding(0, 1)
}
