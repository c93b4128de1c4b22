package colors

// Dark returns the fixed dark palette (licorice background, light purple cards)
func Dark() *Palette {
	return &Palette{
		Preset: "dark",

		// Surfaces
		Primary:        "#210203",
		Background:     "#210203",
		Surface:        "#DAD4EF",
		InversePrimary: "#6750A4",

		// Content
		OnPrimary:    "#FFFFFF",
		OnBackground: "#FFFFFF",
		OnSurface:    "#000000",
		Subtle:       "#A8A2B8",

		// Notifications
		InfoFg: "#322F37",
		InfoBg: "#E6E0E9",
	}
}
