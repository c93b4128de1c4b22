package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/emojiboard/internal/config"
)

// KeyMap holds the key bindings of the emoji screen.
// It implements help.KeyMap for the status bar.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Activate     key.Binding
	ToggleLayout key.Binding
	ToggleTheme  key.Binding
	About        key.Binding
	Close        key.Binding
	Quit         key.Binding
}

// NewKeyMap builds bindings from the configured key mappings.
// Arrow keys always work in addition to the configured keys.
func NewKeyMap(k config.KeyMappings) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(k.Up, "up"),
			key.WithHelp("↑/"+k.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(k.Down, "down"),
			key.WithHelp("↓/"+k.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(k.Left, "left"),
			key.WithHelp("←/"+k.Left, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(k.Right, "right"),
			key.WithHelp("→/"+k.Right, "right"),
		),
		Activate: key.NewBinding(
			key.WithKeys(k.Activate, "space"),
			key.WithHelp(k.Activate, "tap"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys(k.ToggleLayout),
			key.WithHelp(k.ToggleLayout, "layout"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys(k.ToggleTheme),
			key.WithHelp(k.ToggleTheme, "dark mode"),
		),
		About: key.NewBinding(
			key.WithKeys(k.ShowAbout),
			key.WithHelp(k.ShowAbout, "about"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", k.ShowAbout, k.Quit),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys(k.Quit, "ctrl+c"),
			key.WithHelp(k.Quit, "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.ToggleLayout, k.ToggleTheme, k.About, k.Quit}
}

// FullHelp returns all bindings grouped by purpose
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.ToggleLayout, k.ToggleTheme},
		{k.About, k.Quit},
	}
}
