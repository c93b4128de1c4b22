package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the bottom status line
type StatusBarProps struct {
	Width int
	Help  string // rendered key help
	Info  string // right aligned, e.g. palette variant
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps, styles Styles) string {
	style := styles.Subtle

	leftRendered := style.Render(props.Help)
	rightRendered := style.Render(props.Info)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := style.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
