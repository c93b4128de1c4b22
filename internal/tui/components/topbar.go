package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// Zone is a clickable rectangle in screen cells, end-exclusive
type Zone struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the cell (x, y) lies inside the zone
func (z Zone) Contains(x, y int) bool {
	return x >= z.X0 && x < z.X1 && y >= z.Y0 && y < z.Y1
}

// TopBarProps describes the top bar
type TopBarProps struct {
	Width   int
	UiState state.UiState
	Dark    bool
}

// TopBar is the rendered bar plus the positions of its controls
type TopBar struct {
	View   string
	Toggle Zone
	Switch Zone
}

// RenderTopBar renders the title on the left and the layout toggle and
// dark mode switch on the right
func RenderTopBar(props TopBarProps, styles Styles) TopBar {
	width := max(props.Width, 1)

	title := styles.Title.Render(" " + AppTitle)
	button := styles.Button.Render("[" + props.UiState.ToggleIcon.Glyph() + " " + props.UiState.ToggleContentDescription.String() + "]")
	toggle := styles.Button.Render(RenderSwitch(props.Dark))
	spacer := styles.Button.Render("  ")
	trailing := styles.Button.Render(" ")

	titleWidth := lipgloss.Width(title)
	buttonWidth := lipgloss.Width(button)
	switchWidth := lipgloss.Width(toggle)
	rightWidth := buttonWidth + 2 + switchWidth + 1

	gapWidth := max(width-titleWidth-rightWidth, 1)
	gap := styles.Button.Render(strings.Repeat(" ", gapWidth))

	line := lipgloss.JoinHorizontal(lipgloss.Top, title, gap, button, spacer, toggle, trailing)
	// The content line is followed by the bottom border; the top line is padding
	pad := styles.Button.Render(strings.Repeat(" ", lipgloss.Width(line)))
	view := styles.TopBar.Render(lipgloss.JoinVertical(lipgloss.Left, pad, line))

	buttonX := titleWidth + gapWidth
	switchX := buttonX + buttonWidth + 2

	return TopBar{
		View:   view,
		Toggle: Zone{X0: buttonX, Y0: 0, X1: buttonX + buttonWidth, Y1: TopBarHeight},
		Switch: Zone{X0: switchX, Y0: 0, X1: switchX + switchWidth, Y1: TopBarHeight},
	}
}
