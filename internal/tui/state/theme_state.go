package state

// ThemeState holds the light/dark selection of the rendering layer.
// It starts from the system preference and changes only on explicit toggles.
type ThemeState struct {
	isDark  bool
	toggled bool
}

// NewThemeState creates a ThemeState with the system-derived initial value.
func NewThemeState(isDark bool) *ThemeState {
	return &ThemeState{isDark: isDark}
}

// IsDark reports whether the dark theme is active.
func (s *ThemeState) IsDark() bool {
	return s.isDark
}

// Toggle flips between light and dark and returns the new value.
func (s *ThemeState) Toggle() bool {
	s.isDark = !s.isDark
	s.toggled = true
	return s.isDark
}

// SetDark sets the theme from the switch widget.
func (s *ThemeState) SetDark(isDark bool) {
	s.isDark = isDark
	s.toggled = true
}

// AdoptSystemPreference replaces the initial value with a late system
// report. It is ignored once the user has made a choice.
func (s *ThemeState) AdoptSystemPreference(isDark bool) bool {
	if s.toggled {
		return false
	}
	s.isDark = isDark
	return true
}

// UserToggled reports whether the user has changed the theme.
func (s *ThemeState) UserToggled() bool {
	return s.toggled
}
