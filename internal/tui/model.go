package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
	"github.com/thenoetrevino/emojiboard/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Items  emoji.Source

	Layout            *state.LayoutState
	Theme             *state.ThemeState
	Palettes          *theme.Resolver
	UiState           *state.UIState
	NotificationState *state.NotificationState

	Keys KeyMap
	Help help.Model
}

// InitialModel creates the model for one screen session.
// systemDark is the terminal's dark preference as known at start-up.
func InitialModel(ctx context.Context, cfg *config.Config, items emoji.Source, systemDark bool) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	layout := state.NewLayoutState(cfg.Appearance.IsLinearLayout())
	layout.Subscribe(func(u state.UiState) {
		slog.Debug("layout selected",
			"linear", u.IsLinearLayout,
			"toggle", u.ToggleContentDescription.String(),
		)
	})

	return Model{
		Ctx:               ctx,
		Config:            cfg,
		Items:             items,
		Layout:            layout,
		Theme:             state.NewThemeState(cfg.Appearance.ResolveDark(systemDark)),
		Palettes:          theme.NewResolver(cfg.Light, cfg.Dark, cfg.Appearance.DynamicColorEnabled()),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		Keys:              NewKeyMap(cfg.KeyMappings),
		Help:              help.New(),
	}
}

// Palette resolves the palette for the current theme state
func (m *Model) Palette() (colors.Palette, theme.Variant) {
	return m.Palettes.Resolve(m.Theme.IsDark())
}

// Notify shows a transient notification and schedules its dismissal.
// Callers do not wait for it; several may be visible at once.
func (m *Model) Notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message)
	return dismissAfter(id, ToastDuration)
}

// FocusedItem returns the emoji under focus, or "" if the list is empty
func (m *Model) FocusedItem() string {
	return m.Items.At(m.UiState.Focused())
}
