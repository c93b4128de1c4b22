package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/render"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tui.DismissNotificationMsg:
		m.NotificationState.Dismiss(msg.ID)
		return nil

	case tea.BackgroundColorMsg:
		return HandleBackgroundColor(m, msg)

	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)

	case tea.MouseClickMsg:
		return HandleMouseClick(m, msg)

	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)
	}

	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.AboutMode:
		return HandleAboutMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)

	// Update notification state with new window dimensions
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)

	// Keep the focused card on screen after the viewport changed
	ensureFocusVisible(m)
	return nil
}

// HandleBackgroundColor records the terminal background as the seed for
// adaptive palettes. In auto mode it also replaces the start-up guess of
// the dark preference, unless the user already toggled.
func HandleBackgroundColor(m *tui.Model, msg tea.BackgroundColorMsg) tea.Cmd {
	m.Palettes.SetSeed(msg.Color)

	if m.Config.Appearance.Theme == config.ThemeAuto {
		if m.Theme.AdoptSystemPreference(msg.IsDark()) {
			slog.Debug("adopted terminal preference", "dark", msg.IsDark())
		}
	}

	_, variant := m.Palette()
	slog.Debug("palette resolved", "variant", variant.String())
	return nil
}

// ensureFocusVisible scrolls so that the row holding the focused item is shown
func ensureFocusVisible(m *tui.Model) {
	g := render.NewGeometry(m)
	m.UiState.EnsureRowVisible(g.RowOf(m.UiState.Focused()), g.VisibleRows(), g.TotalRows())
}
