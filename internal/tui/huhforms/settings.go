package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/emojiboard/internal/config"
)

// SettingsValues holds the values bound to the settings form fields
type SettingsValues struct {
	Theme        string
	Layout       string
	DynamicColor bool
	Confirm      bool
}

// NewSettingsValues seeds the form values from an appearance
func NewSettingsValues(a config.Appearance) *SettingsValues {
	return &SettingsValues{
		Theme:        a.Theme,
		Layout:       a.Layout,
		DynamicColor: a.DynamicColorEnabled(),
		Confirm:      true,
	}
}

// Apply writes the form values back into the appearance
func (v *SettingsValues) Apply(a *config.Appearance) error {
	next := *a
	next.Theme = v.Theme
	next.Layout = v.Layout
	next.SetDynamicColor(v.DynamicColor)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	*a = next
	return nil
}

// CreateSettingsForm creates the appearance settings form.
// Values are written into v when the form completes.
func CreateSettingsForm(v *SettingsValues, theme huh.Theme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("Theme").
				Description("Start in light or dark mode, or follow the terminal").
				Options(
					huh.NewOption("Follow terminal", config.ThemeAuto),
					huh.NewOption("Light", config.ThemeLight),
					huh.NewOption("Dark", config.ThemeDark),
				).
				Value(&v.Theme),

			huh.NewSelect[string]().
				Key("layout").
				Title("Initial layout").
				Options(
					huh.NewOption("List", config.LayoutLinear),
					huh.NewOption("Grid", config.LayoutGrid),
				).
				Value(&v.Layout),

			huh.NewConfirm().
				Key("dynamic_color").
				Title("Derive colors from the terminal background?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.DynamicColor),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Save settings?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&v.Confirm),
		),
	).WithTheme(theme)
}
