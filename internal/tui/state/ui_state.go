package state

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Browsing the emoji list
	AboutMode              // Displaying the about overlay
)

// UIState manages navigation and terminal dimensions.
// The focused item plays the role of the pointer position: activating
// it is the keyboard equivalent of tapping a card.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// focused is the index of the focused emoji in the sequence
	focused int

	// scrollOffset is the index of the first visible row
	scrollOffset int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = max(width, 0)
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = max(height, 0)
}

// ContentHeight returns the available height for the item area.
// This is terminal height minus top bar, padding and status bar, ensuring a minimum of 3.
func (s *UIState) ContentHeight() int {
	const topBarHeight = 3    // bordered bar
	const paddingHeight = 1   // gap under the bar
	const statusBarHeight = 1 // help line
	return max(s.height-topBarHeight-paddingHeight-statusBarHeight, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Focused returns the index of the focused item.
func (s *UIState) Focused() int {
	return s.focused
}

// SetFocused moves focus to index, clamped to [0, count).
func (s *UIState) SetFocused(index, count int) {
	if count <= 0 {
		s.focused = 0
		return
	}
	s.focused = min(max(index, 0), count-1)
}

// MoveFocus moves focus by delta items, clamped to the sequence.
// Returns true if the focus changed.
func (s *UIState) MoveFocus(delta, count int) bool {
	before := s.focused
	s.SetFocused(s.focused+delta, count)
	return s.focused != before
}

// ScrollOffset returns the index of the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// SetScrollOffset updates the scroll offset.
func (s *UIState) SetScrollOffset(offset int) {
	s.scrollOffset = max(0, offset)
}

// EnsureRowVisible adjusts the scroll offset so that row is on screen.
//
// Parameters:
//   - row: the row that must be visible
//   - visibleRows: number of rows that fit at once
//   - totalRows: number of rows in the current layout
func (s *UIState) EnsureRowVisible(row, visibleRows, totalRows int) {
	visibleRows = max(visibleRows, 1)

	// If row is above visible area, scroll up
	if row < s.scrollOffset {
		s.scrollOffset = row
	}

	// If row is below visible area, scroll down
	if row >= s.scrollOffset+visibleRows {
		s.scrollOffset = row - visibleRows + 1
	}

	// Never leave blank rows after the last one
	s.scrollOffset = min(s.scrollOffset, max(0, totalRows-visibleRows))
	s.scrollOffset = max(s.scrollOffset, 0)
}
