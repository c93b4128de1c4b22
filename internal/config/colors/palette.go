package colors

// Palette defines all configurable color values for one theme state
type Palette struct {
	// Preset name ("light" or "dark")
	Preset string `yaml:"preset"`

	// Surface colors
	Primary        string `yaml:"primary"`         // Emoji cards
	Background     string `yaml:"background"`      // Screen background
	Surface        string `yaml:"surface"`         // Focused card
	InversePrimary string `yaml:"inverse_primary"` // Top bar

	// Content colors (text drawn on the matching surface)
	OnPrimary    string `yaml:"on_primary"`
	OnBackground string `yaml:"on_background"`
	OnSurface    string `yaml:"on_surface"`

	// Muted/secondary text
	Subtle string `yaml:"subtle"`

	// Notification colors
	InfoFg string `yaml:"info_fg"`
	InfoBg string `yaml:"info_bg"`
}

// GetPreset returns a preset palette by name
func GetPreset(name string) *Palette {
	switch name {
	case "dark":
		return Dark()
	case "light", "":
		return Light()
	default:
		return Light()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (p *Palette) ApplyDefaults() {
	preset := GetPreset(p.Preset)
	p.Preset = preset.Preset
	p.MergeFrom(*preset, true)
}

// MergeFrom copies values from other into p.
// When onlyEmpty is set, values already present in p are kept.
func (p *Palette) MergeFrom(other Palette, onlyEmpty bool) {
	merge := func(dst *string, src string) {
		if src == "" {
			return
		}
		if onlyEmpty && *dst != "" {
			return
		}
		*dst = src
	}

	merge(&p.Primary, other.Primary)
	merge(&p.Background, other.Background)
	merge(&p.Surface, other.Surface)
	merge(&p.InversePrimary, other.InversePrimary)
	merge(&p.OnPrimary, other.OnPrimary)
	merge(&p.OnBackground, other.OnBackground)
	merge(&p.OnSurface, other.OnSurface)
	merge(&p.Subtle, other.Subtle)
	merge(&p.InfoFg, other.InfoFg)
	merge(&p.InfoBg, other.InfoBg)
}
