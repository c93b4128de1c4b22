package config

import (
	"fmt"
	"strings"
)

// Theme preference values accepted in the appearance section
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Layout values accepted in the appearance section
const (
	LayoutLinear = "linear"
	LayoutGrid   = "grid"
)

// Appearance holds the start-up appearance preferences.
// These only seed the initial screen state; toggles made while the
// program runs are never written back.
type Appearance struct {
	Theme        string `yaml:"theme"`
	DynamicColor *bool  `yaml:"dynamic_color,omitempty"`
	Layout       string `yaml:"layout"`
}

// DefaultAppearance returns the default appearance preferences
func DefaultAppearance() Appearance {
	dynamic := true
	return Appearance{
		Theme:        ThemeAuto,
		DynamicColor: &dynamic,
		Layout:       LayoutLinear,
	}
}

// DynamicColorEnabled reports whether palettes may be derived from the terminal
func (a Appearance) DynamicColorEnabled() bool {
	return a.DynamicColor == nil || *a.DynamicColor
}

// SetDynamicColor sets the dynamic color preference
func (a *Appearance) SetDynamicColor(enabled bool) {
	a.DynamicColor = &enabled
}

// IsLinearLayout reports whether the initial layout is the vertical list
func (a Appearance) IsLinearLayout() bool {
	return a.Layout != LayoutGrid
}

// ResolveDark returns the initial dark state. systemDark is used when
// the preference is "auto".
func (a Appearance) ResolveDark(systemDark bool) bool {
	switch a.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return systemDark
	}
}

// Validate checks the enumerated fields
func (a Appearance) Validate() error {
	switch a.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q: want one of auto, light, dark", a.Theme)
	}
	switch a.Layout {
	case LayoutLinear, LayoutGrid:
	default:
		return fmt.Errorf("invalid layout %q: want linear or grid", a.Layout)
	}
	return nil
}

// applyDefaults fills in missing appearance values
func (a *Appearance) applyDefaults() {
	defaults := DefaultAppearance()

	a.Theme = strings.ToLower(strings.TrimSpace(a.Theme))
	a.Layout = strings.ToLower(strings.TrimSpace(a.Layout))

	if a.Theme == "" {
		a.Theme = defaults.Theme
	}
	if a.Layout == "" {
		a.Layout = defaults.Layout
	}
	if a.DynamicColor == nil {
		a.DynamicColor = defaults.DynamicColor
	}
}
