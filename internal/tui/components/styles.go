// Package components provides the reusable pieces of the emoji screen.
// Styles are derived from a palette on every render, so switching theme
// needs no global state.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
)

// Styles holds the lipgloss styles for one palette
type Styles struct {
	Palette colors.Palette

	// Screen fills the background behind everything
	Screen lipgloss.Style

	// Card and FocusedCard draw the emoji cards
	Card        lipgloss.Style
	FocusedCard lipgloss.Style

	// TopBar is the bar container, Title its heading
	TopBar lipgloss.Style
	Title  lipgloss.Style

	// Button is the layout toggle
	Button lipgloss.Style

	// Subtle is used for secondary text (status bar, scroll hints)
	Subtle lipgloss.Style
}

// NewStyles builds all styles from a palette
func NewStyles(p colors.Palette) Styles {
	primary := lipgloss.Color(p.Primary)
	background := lipgloss.Color(p.Background)
	surface := lipgloss.Color(p.Surface)
	inverse := lipgloss.Color(p.InversePrimary)
	onPrimary := lipgloss.Color(p.OnPrimary)
	onBackground := lipgloss.Color(p.OnBackground)
	onSurface := lipgloss.Color(p.OnSurface)

	return Styles{
		Palette: p,

		Screen: lipgloss.NewStyle().
			Background(background).
			Foreground(onBackground),

		Card: lipgloss.NewStyle().
			Background(primary).
			Foreground(onPrimary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(surface).
			BorderBackground(background),

		FocusedCard: lipgloss.NewStyle().
			Background(surface).
			Foreground(onSurface).
			Border(lipgloss.ThickBorder()).
			BorderForeground(onBackground).
			BorderBackground(background),

		TopBar: lipgloss.NewStyle().
			Background(inverse).
			Foreground(onBackground).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(surface).
			BorderBackground(inverse),

		Title: lipgloss.NewStyle().
			Background(inverse).
			Foreground(onBackground).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(inverse).
			Foreground(onBackground),

		Subtle: lipgloss.NewStyle().
			Background(background).
			Foreground(lipgloss.Color(p.Subtle)),
	}
}
