package render

import (
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/components"
)

const (
	// GridColumns is the fixed column count of the grid layout
	GridColumns = 3

	screenMargin = 2 // left/right padding around the item area
	columnGap    = 2 // between grid cards
	rowGap       = 1 // between rows in both layouts

	linearCardHeight = 3
	gridCardHeight   = 5
	minCardWidth     = 6
)

// Geometry describes where every card is drawn. Drawing and mouse hit
// testing both derive positions from it.
type Geometry struct {
	Linear        bool
	Columns       int
	CardWidth     int
	CardHeight    int
	ContentTop    int
	ContentHeight int
	ScrollOffset  int
	ItemCount     int
}

// NewGeometry computes the geometry for the model's current state
func NewGeometry(m *tui.Model) Geometry {
	linear := m.Layout.IsLinearLayout()
	width := max(m.UiState.Width()-2*screenMargin, minCardWidth)

	g := Geometry{
		Linear:        linear,
		ContentTop:    components.TopBarHeight + 1,
		ContentHeight: m.UiState.ContentHeight(),
		ScrollOffset:  m.UiState.ScrollOffset(),
		ItemCount:     m.Items.Len(),
	}

	if linear {
		g.Columns = 1
		g.CardWidth = width
		g.CardHeight = linearCardHeight
	} else {
		g.Columns = GridColumns
		g.CardWidth = max((width-(GridColumns-1)*columnGap)/GridColumns, minCardWidth)
		g.CardHeight = gridCardHeight
	}

	return g
}

// RowPitch is the vertical distance between the tops of two rows
func (g Geometry) RowPitch() int {
	return g.CardHeight + rowGap
}

// ColumnPitch is the horizontal distance between two grid columns
func (g Geometry) ColumnPitch() int {
	return g.CardWidth + columnGap
}

// VisibleRows is the number of complete rows that fit in the content area
func (g Geometry) VisibleRows() int {
	return max(1, (g.ContentHeight+rowGap)/g.RowPitch())
}

// TotalRows is the number of rows in the current layout
func (g Geometry) TotalRows() int {
	return (g.ItemCount + g.Columns - 1) / g.Columns
}

// RowOf returns the row holding item index
func (g Geometry) RowOf(index int) int {
	return index / g.Columns
}

// ItemAt maps a screen cell to the index of the card drawn there.
// Gaps, margins and rows outside the viewport hit nothing.
func (g Geometry) ItemAt(x, y int) (int, bool) {
	relY := y - g.ContentTop
	if relY < 0 || relY >= g.ContentHeight {
		return 0, false
	}
	visibleRow := relY / g.RowPitch()
	if relY%g.RowPitch() >= g.CardHeight || visibleRow >= g.VisibleRows() {
		return 0, false
	}

	relX := x - screenMargin
	if relX < 0 {
		return 0, false
	}
	col := relX / g.ColumnPitch()
	if col >= g.Columns || relX%g.ColumnPitch() >= g.CardWidth {
		return 0, false
	}

	index := (g.ScrollOffset+visibleRow)*g.Columns + col
	if index >= g.ItemCount {
		return 0, false
	}
	return index, true
}
