// Package theme resolves the palette used to draw the screen from the
// light/dark state and the terminal's color capability.
package theme

import (
	"image/color"

	"github.com/thenoetrevino/emojiboard/internal/config/colors"
)

// Variant identifies which palette family was resolved.
type Variant int

const (
	VariantLight Variant = iota
	VariantDark
	VariantAdaptiveLight
	VariantAdaptiveDark
)

func (v Variant) String() string {
	switch v {
	case VariantDark:
		return "dark"
	case VariantAdaptiveLight:
		return "adaptive-light"
	case VariantAdaptiveDark:
		return "adaptive-dark"
	default:
		return "light"
	}
}

// IsAdaptive reports whether the palette was derived from the terminal.
func (v Variant) IsAdaptive() bool {
	return v == VariantAdaptiveLight || v == VariantAdaptiveDark
}

// Resolver picks a palette for a light/dark state.
//
// The adaptive capability is the terminal's answer to a background color
// query. Until a seed is reported (or when dynamic color is disabled) the
// fixed palettes are used; that fallback is silent.
type Resolver struct {
	light        colors.Palette
	dark         colors.Palette
	dynamicColor bool
	seed         color.Color
}

// NewResolver creates a Resolver over the two fixed palettes.
func NewResolver(light, dark colors.Palette, dynamicColor bool) *Resolver {
	return &Resolver{
		light:        light,
		dark:         dark,
		dynamicColor: dynamicColor,
	}
}

// SetSeed records the color reported by the terminal. A nil seed marks
// the capability as unsupported.
func (r *Resolver) SetSeed(seed color.Color) {
	r.seed = seed
}

// Supported reports whether an adaptive palette can be derived.
func (r *Resolver) Supported() bool {
	return r.seed != nil
}

// DynamicColor reports whether adaptive palettes were requested.
func (r *Resolver) DynamicColor() bool {
	return r.dynamicColor
}

// Resolve returns the palette and variant for the given dark state.
func (r *Resolver) Resolve(dark bool) (colors.Palette, Variant) {
	if r.dynamicColor && r.seed != nil {
		if p, ok := Adaptive(r.seed, dark); ok {
			if dark {
				return p, VariantAdaptiveDark
			}
			return p, VariantAdaptiveLight
		}
	}
	if dark {
		return r.dark, VariantDark
	}
	return r.light, VariantLight
}
