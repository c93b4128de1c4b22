package state

// Icon identifies the glyph shown on the layout toggle button.
type Icon int

const (
	// GridIcon is shown while the linear layout is active (tap to switch to grid)
	GridIcon Icon = iota
	// ListIcon is shown while the grid layout is active (tap to switch to list)
	ListIcon
)

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	if i == ListIcon {
		return "☰"
	}
	return "▦"
}

// Label identifies the accessible description of the layout toggle button.
type Label int

const (
	GridLabel Label = iota
	ListLabel
)

// String returns the human readable description.
func (l Label) String() string {
	if l == ListLabel {
		return "List layout"
	}
	return "Grid layout"
}

// UiState is the observable snapshot of the layout selection.
// ToggleIcon and ToggleContentDescription are always derived from IsLinearLayout.
type UiState struct {
	IsLinearLayout           bool
	ToggleIcon               Icon
	ToggleContentDescription Label
}

// NewUiState derives a complete snapshot from the layout flag.
func NewUiState(isLinearLayout bool) UiState {
	if isLinearLayout {
		return UiState{
			IsLinearLayout:           true,
			ToggleIcon:               GridIcon,
			ToggleContentDescription: GridLabel,
		}
	}
	return UiState{
		IsLinearLayout:           false,
		ToggleIcon:               ListIcon,
		ToggleContentDescription: ListLabel,
	}
}

// LayoutState holds the layout selection for one screen session.
// Only the flag is stored; the icon and label are computed on read.
type LayoutState struct {
	isLinearLayout bool
	subscribers    []func(UiState)
}

// NewLayoutState creates a LayoutState with the given initial layout.
func NewLayoutState(isLinearLayout bool) *LayoutState {
	return &LayoutState{isLinearLayout: isLinearLayout}
}

// Snapshot returns the current UiState.
func (s *LayoutState) Snapshot() UiState {
	return NewUiState(s.isLinearLayout)
}

// IsLinearLayout reports whether the vertical list layout is selected.
func (s *LayoutState) IsLinearLayout() bool {
	return s.isLinearLayout
}

// SelectLayout overwrites the layout flag and publishes the new snapshot
// to every subscriber, even when the value did not change.
func (s *LayoutState) SelectLayout(isLinearLayout bool) {
	s.isLinearLayout = isLinearLayout
	snapshot := s.Snapshot()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

// Subscribe registers fn to be called synchronously after every SelectLayout.
func (s *LayoutState) Subscribe(fn func(UiState)) {
	if fn == nil {
		return
	}
	s.subscribers = append(s.subscribers, fn)
}
