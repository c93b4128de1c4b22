package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
)

// Saturation bounds keep grey terminals tinted and neon terminals readable.
const (
	minSeedSaturation = 0.25
	maxSeedSaturation = 0.65
)

// Adaptive derives a palette from a seed color, keeping the seed's hue
// and choosing lightness by the dark state. Returns false if the seed
// cannot be converted.
func Adaptive(seed color.Color, dark bool) (colors.Palette, bool) {
	c, ok := colorful.MakeColor(seed)
	if !ok {
		return colors.Palette{}, false
	}

	h, s, _ := c.Hsl()
	s = min(max(s, minSeedSaturation), maxSeedSaturation)

	tone := func(sat, light float64) string {
		return colorful.Hsl(h, sat, light).Clamped().Hex()
	}

	if dark {
		return colors.Palette{
			Preset:         "adaptive-dark",
			Primary:        tone(s*0.6, 0.10),
			Background:     tone(s*0.6, 0.08),
			Surface:        tone(s*0.5, 0.86),
			InversePrimary: tone(s, 0.40),
			OnPrimary:      "#FFFFFF",
			OnBackground:   "#FFFFFF",
			OnSurface:      "#000000",
			Subtle:         tone(0.10, 0.65),
			InfoFg:         tone(0.15, 0.15),
			InfoBg:         tone(0.15, 0.90),
		}, true
	}

	return colors.Palette{
		Preset:         "adaptive-light",
		Primary:        tone(s*0.5, 0.90),
		Background:     tone(s*0.5, 0.92),
		Surface:        tone(s, 0.62),
		InversePrimary: tone(s, 0.70),
		OnPrimary:      "#000000",
		OnBackground:   "#000000",
		OnSurface:      "#FFFFFF",
		Subtle:         tone(0.10, 0.40),
		InfoFg:         "#FFFFFF",
		InfoBg:         tone(0.10, 0.20),
	}, true
}
