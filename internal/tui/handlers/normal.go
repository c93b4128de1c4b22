package handlers

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/render"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	keys := m.Keys

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.About):
		m.UiState.SetMode(state.AboutMode)
		return nil
	case key.Matches(msg, keys.ToggleLayout):
		return HandleToggleLayout(m)
	case key.Matches(msg, keys.ToggleTheme):
		return HandleToggleTheme(m)
	case key.Matches(msg, keys.Activate):
		return ActivateItem(m, m.UiState.Focused())
	case key.Matches(msg, keys.Up):
		return handleMove(m, -rowStep(m))
	case key.Matches(msg, keys.Down):
		return handleMove(m, rowStep(m))
	case key.Matches(msg, keys.Left):
		return handleMove(m, -1)
	case key.Matches(msg, keys.Right):
		return handleMove(m, 1)
	}
	return nil
}

// HandleToggleLayout switches between the list and the grid.
// The focused item stays focused.
func HandleToggleLayout(m *tui.Model) tea.Cmd {
	m.Layout.SelectLayout(!m.Layout.IsLinearLayout())
	ensureFocusVisible(m)
	return nil
}

// HandleToggleTheme flips between light and dark
func HandleToggleTheme(m *tui.Model) tea.Cmd {
	dark := m.Theme.Toggle()
	_, variant := m.Palette()
	slog.Info("theme toggled", "dark", dark, "variant", variant.String())
	return nil
}

// HandleSetDark sets the theme from the dark mode switch
func HandleSetDark(m *tui.Model, dark bool) tea.Cmd {
	m.Theme.SetDark(dark)
	_, variant := m.Palette()
	slog.Info("theme switched", "dark", dark, "variant", variant.String())
	return nil
}

// ActivateItem shows the transient notification for the item at index.
// Each activation produces exactly one notification; out of range
// indices (an empty list) do nothing.
func ActivateItem(m *tui.Model, index int) tea.Cmd {
	item := m.Items.At(index)
	if item == "" {
		return nil
	}
	return m.Notify(state.LevelInfo, fmt.Sprintf("Emoji: %s", item))
}

// rowStep is the index distance between vertically adjacent cards
func rowStep(m *tui.Model) int {
	if m.Layout.IsLinearLayout() {
		return 1
	}
	return render.GridColumns
}

func handleMove(m *tui.Model, delta int) tea.Cmd {
	if m.UiState.MoveFocus(delta, m.Items.Len()) {
		ensureFocusVisible(m)
	}
	return nil
}
