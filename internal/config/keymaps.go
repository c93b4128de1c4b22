package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// Items
	Activate string `yaml:"activate"`

	// Toggles
	ToggleLayout string `yaml:"toggle_layout"`
	ToggleTheme  string `yaml:"toggle_theme"`

	// Other
	ShowAbout string `yaml:"show_about"`
	Quit      string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		Up:    "k",
		Down:  "j",
		Left:  "h",
		Right: "l",

		// Items
		Activate: "enter",

		// Toggles
		ToggleLayout: "t",
		ToggleTheme:  "d",

		// Other
		ShowAbout: "?",
		Quit:      "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Up == "" {
		k.Up = defaults.Up
	}
	if k.Down == "" {
		k.Down = defaults.Down
	}
	if k.Left == "" {
		k.Left = defaults.Left
	}
	if k.Right == "" {
		k.Right = defaults.Right
	}
	if k.Activate == "" {
		k.Activate = defaults.Activate
	}
	if k.ToggleLayout == "" {
		k.ToggleLayout = defaults.ToggleLayout
	}
	if k.ToggleTheme == "" {
		k.ToggleTheme = defaults.ToggleTheme
	}
	if k.ShowAbout == "" {
		k.ShowAbout = defaults.ShowAbout
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
