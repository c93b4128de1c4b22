package render

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
	"github.com/thenoetrevino/emojiboard/internal/tui/components"
)

// LinearRows lays items out one per row, in order
func LinearRows(items emoji.Source) [][]string {
	return items.Rows(1)
}

// GridRows lays items out in rows of GridColumns, in order
func GridRows(items emoji.Source) [][]string {
	return items.Rows(GridColumns)
}

// Rows selects the row layout for the geometry
func Rows(items emoji.Source, g Geometry) [][]string {
	if g.Linear {
		return LinearRows(items)
	}
	return GridRows(items)
}

// RenderBoard renders the visible rows of cards. The result is exactly
// width x g.ContentHeight cells.
func RenderBoard(items emoji.Source, g Geometry, focused int, width int, styles components.Styles) string {
	rows := Rows(items, g)

	blank := styles.Screen.Render(strings.Repeat(" ", max(width, 0)))
	margin := fill(styles, screenMargin, g.CardHeight)
	gap := fill(styles, columnGap, g.CardHeight)

	var lines []string
	first := g.ScrollOffset
	last := min(first+g.VisibleRows(), len(rows))
	for r := first; r < last; r++ {
		if r > first {
			for range rowGap {
				lines = append(lines, blank)
			}
		}

		cards := []string{margin}
		for c, item := range rows[r] {
			if c > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, components.RenderCard(components.CardProps{
				Emoji:   item,
				Width:   g.CardWidth,
				Height:  g.CardHeight,
				Focused: r*g.Columns+c == focused,
			}, styles))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if len(lines) == 0 {
		lines = append(lines, styles.Subtle.Render(strings.Repeat(" ", screenMargin)+"No emoji to show"))
	}

	return styles.Screen.
		Width(width).
		Height(g.ContentHeight).
		MaxHeight(g.ContentHeight).
		Render(strings.Join(lines, "\n"))
}

// fill returns a w x h block of background cells
func fill(styles components.Styles, w, h int) string {
	line := styles.Screen.Render(strings.Repeat(" ", w))
	return strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n")
}
