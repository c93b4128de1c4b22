package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/emojiboard/internal/config"
)

func TestSettingsValuesRoundTrip(t *testing.T) {
	a := config.DefaultAppearance()
	v := NewSettingsValues(a)

	assert.Equal(t, config.ThemeAuto, v.Theme)
	assert.Equal(t, config.LayoutLinear, v.Layout)
	assert.True(t, v.DynamicColor)

	v.Theme = config.ThemeDark
	v.Layout = config.LayoutGrid
	v.DynamicColor = false
	require.NoError(t, v.Apply(&a))

	assert.Equal(t, config.ThemeDark, a.Theme)
	assert.Equal(t, config.LayoutGrid, a.Layout)
	assert.False(t, a.DynamicColorEnabled())
}

func TestSettingsApplyRejectsInvalid(t *testing.T) {
	a := config.DefaultAppearance()
	v := NewSettingsValues(a)
	v.Layout = "carousel"

	require.Error(t, v.Apply(&a))
	assert.Equal(t, config.LayoutLinear, a.Layout)
}

func TestCreateSettingsForm(t *testing.T) {
	v := NewSettingsValues(config.DefaultAppearance())
	form := CreateSettingsForm(v, CreateTheme(config.LightPalette()))

	require.NotNil(t, form)
}
