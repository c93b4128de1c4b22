package render

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/components"
	"github.com/thenoetrevino/emojiboard/internal/tui/notifications"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	palette, _ := m.Palette()

	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.WindowTitle = components.AppTitle
	view.BackgroundColor = lipgloss.Color(palette.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = Screen(m)
	return view
}

// Screen renders the full screen: base layout, overlay and notifications
func Screen(m *tui.Model) string {
	palette, _ := m.Palette()
	styles := components.NewStyles(palette)

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(Base(m, styles)),
	}

	if m.UiState.Mode() == state.AboutMode {
		if about := RenderAboutLayer(m, styles); about != nil {
			layerStack = append(layerStack, about)
		}
	}

	layerStack = append(layerStack, m.NotificationState.GetLayers(func(n state.Notification) string {
		return notifications.RenderFromState(n, palette)
	}, components.StatusBarHeight+1)...)

	return lipgloss.NewCanvas(layerStack...).Render()
}

// TopBarFor renders the top bar for the model's current state
func TopBarFor(m *tui.Model, styles components.Styles) components.TopBar {
	return components.RenderTopBar(components.TopBarProps{
		Width:   m.UiState.Width(),
		UiState: m.Layout.Snapshot(),
		Dark:    m.Theme.IsDark(),
	}, styles)
}

// Base renders the top bar, the item area in the selected layout and the status bar
func Base(m *tui.Model, styles components.Styles) string {
	width := m.UiState.Width()
	g := NewGeometry(m)

	bar := TopBarFor(m, styles)
	padding := styles.Screen.Render(strings.Repeat(" ", width))
	board := RenderBoard(m.Items, g, m.UiState.Focused(), width, styles)
	status := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Help:  " " + m.Help.View(m.Keys),
		Info:  statusInfo(m) + " ",
	}, styles)

	return lipgloss.JoinVertical(lipgloss.Left, bar.View, padding, board, status)
}

// statusInfo shows the focus position and the resolved palette
func statusInfo(m *tui.Model) string {
	_, variant := m.Palette()
	if m.Items.Len() == 0 {
		return variant.String()
	}
	return fmt.Sprintf("%s %d/%d · %s", m.FocusedItem(), m.UiState.Focused()+1, m.Items.Len(), variant)
}
