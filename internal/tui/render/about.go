package render

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/emojiboard/internal/tui"
	"github.com/thenoetrevino/emojiboard/internal/tui/components"
	"github.com/thenoetrevino/emojiboard/internal/tui/layers"
)

type rendererKey struct {
	width int
	dark  bool
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width and style
func getRenderer(width int, dark bool) (*glamour.TermRenderer, error) {
	k := rendererKey{width: width, dark: dark}
	if cached, ok := rendererCache.Load(k); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := "light"
	if dark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(k, renderer)
	return renderer, nil
}

// AboutMarkdown describes the screen and lists the active key bindings
func AboutMarkdown(m *tui.Model) string {
	var b strings.Builder

	b.WriteString("# " + components.AppTitle + "\n\n")
	fmt.Fprintf(&b, "%d emoji, shown as a list or a %d-column grid. ", m.Items.Len(), GridColumns)
	b.WriteString("Tap a card (click it, or focus it and press the tap key) to see its value.\n\n")
	b.WriteString("| Key | Action |\n| --- | --- |\n")
	for _, group := range m.Keys.FullHelp() {
		for _, binding := range group {
			writeBindingRow(&b, binding)
		}
	}
	writeBindingRow(&b, m.Keys.Close)

	_, variant := m.Palette()
	fmt.Fprintf(&b, "\nPalette: **%s**\n", variant)

	return b.String()
}

func writeBindingRow(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
}

// RenderAboutLayer renders the about overlay as a centered layer
func RenderAboutLayer(m *tui.Model, styles components.Styles) *lipgloss.Layer {
	screenWidth := m.UiState.Width()
	screenHeight := m.UiState.Height()

	width, _ := layers.CalculateOverlayDimensions(0, screenWidth, screenHeight)
	innerWidth := max(width-layers.OverlayChromeWidth, 10)

	content := AboutMarkdown(m)
	if renderer, err := getRenderer(innerWidth, m.Theme.IsDark()); err == nil {
		if rendered, err := renderer.Render(content); err == nil {
			content = strings.Trim(rendered, "\n")
		}
	}

	_, height := layers.CalculateOverlayDimensions(lipgloss.Height(content), screenWidth, screenHeight)
	innerHeight := max(height-layers.OverlayChromeHeight, 1)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Palette.Surface)).
		Background(lipgloss.Color(styles.Palette.Background)).
		Foreground(lipgloss.Color(styles.Palette.OnBackground)).
		Padding(1, 1).
		MaxHeight(height).
		Render(truncateLines(content, innerHeight))

	return layers.CreateCenteredLayer(box, screenWidth, screenHeight)
}

// truncateLines keeps at most n lines
func truncateLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
