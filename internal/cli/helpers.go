package cli

import (
	"fmt"
	"regexp"

	"github.com/thenoetrevino/emojiboard/internal/config"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %q", color)
	}
	return nil
}

// ValidatePalette checks every color of a palette
func ValidatePalette(p config.Palette) error {
	fields := []struct {
		name  string
		value string
	}{
		{"primary", p.Primary},
		{"background", p.Background},
		{"surface", p.Surface},
		{"inverse_primary", p.InversePrimary},
		{"on_primary", p.OnPrimary},
		{"on_background", p.OnBackground},
		{"on_surface", p.OnSurface},
		{"subtle", p.Subtle},
		{"info_fg", p.InfoFg},
		{"info_bg", p.InfoBg},
	}

	for _, f := range fields {
		if err := ValidateColorHex(f.value); err != nil {
			return fmt.Errorf("%s palette %s: %w", p.Preset, f.name, err)
		}
	}
	return nil
}

// ParseTheme maps a --theme flag value to a config theme
func ParseTheme(value string) (string, error) {
	switch value {
	case config.ThemeAuto, config.ThemeLight, config.ThemeDark:
		return value, nil
	}
	return "", fmt.Errorf("invalid theme '%s' (must be: auto, light, dark)", value)
}
