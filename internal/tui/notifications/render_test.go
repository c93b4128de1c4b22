package notifications

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

func TestRenderContainsMessage(t *testing.T) {
	out := RenderFromState(state.Notification{Level: state.LevelInfo, Message: "Emoji: 🍕"}, *colors.Light())

	assert.Contains(t, ansi.Strip(out), "Emoji: 🍕")
	assert.Equal(t, 3, lipgloss.Height(out), "toast is one line plus border")
}

func TestRenderErrorHasIcon(t *testing.T) {
	out := Render(Error, "boom", *colors.Dark())

	assert.Contains(t, ansi.Strip(out), "✕ boom")
}

func TestRenderCapsWidth(t *testing.T) {
	long := "Emoji: this message is much longer than a toast should ever be allowed to grow"
	out := Render(Info, long, *colors.Light())

	assert.LessOrEqual(t, lipgloss.Width(out), maxToastWidth)
}
