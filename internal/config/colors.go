package config

import "github.com/thenoetrevino/emojiboard/internal/config/colors"

// Palette is re-exported so callers only need the config package
type Palette = colors.Palette

// LightPalette returns the fixed light palette
func LightPalette() colors.Palette {
	return *colors.Light()
}

// DarkPalette returns the fixed dark palette
func DarkPalette() colors.Palette {
	return *colors.Dark()
}
