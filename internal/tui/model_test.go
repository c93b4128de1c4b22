package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
	"github.com/thenoetrevino/emojiboard/internal/tui/theme"
)

func TestInitialModelFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Appearance.Layout = config.LayoutGrid
	cfg.Appearance.Theme = config.ThemeAuto

	m := InitialModel(context.Background(), cfg, emoji.Default(), true)

	assert.False(t, m.Layout.IsLinearLayout())
	assert.Equal(t, state.ListIcon, m.Layout.Snapshot().ToggleIcon)
	assert.True(t, m.Theme.IsDark())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestInitialModelNilConfig(t *testing.T) {
	m := InitialModel(context.Background(), nil, emoji.Default(), false)

	require.NotNil(t, m.Config)
	assert.True(t, m.Layout.IsLinearLayout())
}

func TestPaletteFollowsTheme(t *testing.T) {
	m := InitialModel(context.Background(), config.Default(), emoji.Default(), false)

	p, variant := m.Palette()
	assert.Equal(t, theme.VariantLight, variant)
	assert.Equal(t, config.LightPalette().Background, p.Background)

	m.Theme.Toggle()
	p, variant = m.Palette()
	assert.Equal(t, theme.VariantDark, variant)
	assert.Equal(t, config.DarkPalette().Background, p.Background)
}

func TestNotifySchedulesDismissal(t *testing.T) {
	m := InitialModel(context.Background(), config.Default(), emoji.Default(), false)

	cmd := m.Notify(state.LevelInfo, "Emoji: 😀")
	require.NotNil(t, cmd)

	all := m.NotificationState.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Emoji: 😀", all[0].Message)
}

func TestDismissAfterCarriesID(t *testing.T) {
	msg := dismissAfter(7, 0)()
	assert.Equal(t, DismissNotificationMsg{ID: 7}, msg)
}

func TestFocusedItem(t *testing.T) {
	m := InitialModel(context.Background(), config.Default(), emoji.New([]string{"a", "b"}), false)
	m.UiState.SetFocused(1, m.Items.Len())
	assert.Equal(t, "b", m.FocusedItem())

	empty := InitialModel(context.Background(), config.Default(), emoji.New(nil), false)
	assert.Equal(t, "", empty.FocusedItem())
}

func TestKeyMapHelp(t *testing.T) {
	k := NewKeyMap(config.DefaultKeyMappings())

	assert.Len(t, k.ShortHelp(), 5)
	assert.Equal(t, "t", k.ToggleLayout.Help().Key)
	assert.Contains(t, k.Quit.Keys(), "ctrl+c")
	assert.Contains(t, k.Activate.Keys(), "space")
}
