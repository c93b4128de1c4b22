package theme

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
)

func newTestResolver(dynamic bool) *Resolver {
	return NewResolver(*colors.Light(), *colors.Dark(), dynamic)
}

func TestResolveFixedPalettes(t *testing.T) {
	r := newTestResolver(true)

	p, v := r.Resolve(false)
	assert.Equal(t, VariantLight, v)
	assert.Equal(t, "#DAD4EF", p.Background)

	p, v = r.Resolve(true)
	assert.Equal(t, VariantDark, v)
	assert.Equal(t, "#210203", p.Background)
}

func TestResolveAdaptiveWhenSupported(t *testing.T) {
	r := newTestResolver(true)
	r.SetSeed(color.RGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff})
	require.True(t, r.Supported())

	light, v := r.Resolve(false)
	assert.Equal(t, VariantAdaptiveLight, v)
	assert.True(t, v.IsAdaptive())

	dark, v := r.Resolve(true)
	assert.Equal(t, VariantAdaptiveDark, v)

	lb, err := colorful.Hex(light.Background)
	require.NoError(t, err)
	db, err := colorful.Hex(dark.Background)
	require.NoError(t, err)
	_, _, ll := lb.Hsl()
	_, _, dl := db.Hsl()
	assert.Greater(t, ll, dl, "adaptive light background must be lighter than adaptive dark")
}

func TestResolveAdaptiveDisabledFallsBack(t *testing.T) {
	r := newTestResolver(false)
	r.SetSeed(color.White)

	_, v := r.Resolve(true)
	assert.Equal(t, VariantDark, v)
}

func TestResolveUnsupportedFallsBack(t *testing.T) {
	r := newTestResolver(true)
	r.SetSeed(nil)

	assert.False(t, r.Supported())
	_, v := r.Resolve(false)
	assert.Equal(t, VariantLight, v)
}

func TestAdaptiveKeepsSeedHue(t *testing.T) {
	seed := colorful.Hsl(200, 0.5, 0.3)

	p, ok := Adaptive(seed, false)
	require.True(t, ok)

	surface, err := colorful.Hex(p.Surface)
	require.NoError(t, err)
	h, _, _ := surface.Hsl()
	assert.InDelta(t, 200, h, 2)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "light", VariantLight.String())
	assert.Equal(t, "dark", VariantDark.String())
	assert.Equal(t, "adaptive-light", VariantAdaptiveLight.String())
	assert.Equal(t, "adaptive-dark", VariantAdaptiveDark.String())
}
