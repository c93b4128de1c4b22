package colors

// Light returns the fixed light palette (lavender background, purple cards)
func Light() *Palette {
	return &Palette{
		Preset: "light",

		// Surfaces
		Primary:        "#DAD4EF",
		Background:     "#DAD4EF",
		Surface:        "#9B7BD2",
		InversePrimary: "#9B7BD2",

		// Content
		OnPrimary:    "#000000",
		OnBackground: "#000000",
		OnSurface:    "#FFFFFF",
		Subtle:       "#5E5873",

		// Notifications
		InfoFg: "#FFFFFF",
		InfoBg: "#322F37",
	}
}
