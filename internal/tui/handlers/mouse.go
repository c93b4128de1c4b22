package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/components"
	"github.com/thenoetrevino/emojiboard/internal/tui/render"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// HandleMouseClick maps a left click to the control or card under it.
// Clicking a card focuses it and activates it, the same as a tap.
func HandleMouseClick(m *tui.Model, msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}

	// Any click dismisses the about overlay
	if m.UiState.Mode() == state.AboutMode {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	palette, _ := m.Palette()
	bar := render.TopBarFor(m, components.NewStyles(palette))
	switch {
	case bar.Toggle.Contains(mouse.X, mouse.Y):
		return HandleToggleLayout(m)
	case bar.Switch.Contains(mouse.X, mouse.Y):
		return HandleSetDark(m, !m.Theme.IsDark())
	}

	index, ok := render.NewGeometry(m).ItemAt(mouse.X, mouse.Y)
	if !ok {
		return nil
	}
	m.UiState.SetFocused(index, m.Items.Len())
	return ActivateItem(m, index)
}
