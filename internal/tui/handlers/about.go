package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// ============================================================================
// ABOUT MODE HANDLERS
// ============================================================================

// HandleAboutMode handles input while the about overlay is open.
func HandleAboutMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if key.Matches(msg, m.Keys.Close) {
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
