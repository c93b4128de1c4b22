package components

import "charm.land/lipgloss/v2"

// CardProps describes one emoji card
type CardProps struct {
	Emoji   string
	Width   int // outer width including border
	Height  int // outer height including border
	Focused bool
}

// RenderCard renders an emoji centered in a bordered card of exactly
// Width x Height cells
func RenderCard(props CardProps, styles Styles) string {
	innerWidth := max(props.Width-cardBorderWidth, 1)
	innerHeight := max(props.Height-cardBorderHeight, 1)

	style := styles.Card
	if props.Focused {
		style = styles.FocusedCard
	}

	body := lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, props.Emoji)

	return style.Render(body)
}
