package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/handlers"
	"github.com/thenoetrevino/emojiboard/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
// It delegates all operations to the handlers and render subpackages.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
// systemDark is the terminal's dark preference as detected at start-up.
func New(ctx context.Context, cfg *config.Config, items emoji.Source, systemDark bool) *App {
	model := tui.InitialModel(ctx, cfg, items, systemDark)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
// The terminal background is queried when it can change the palette or
// the initial theme.
func (a *App) Init() tea.Cmd {
	appearance := a.model.Config.Appearance
	if appearance.DynamicColorEnabled() || appearance.Theme == config.ThemeAuto {
		return tea.RequestBackgroundColor
	}
	return nil
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
