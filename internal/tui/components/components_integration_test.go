package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/emojiboard/internal/config/colors"
	"github.com/thenoetrevino/emojiboard/internal/tui/state"
)

// TestRenderCardDimensions ensures cards occupy exactly the requested cells,
// which hit testing relies on
func TestRenderCardDimensions(t *testing.T) {
	styles := NewStyles(*colors.Light())

	tests := []struct {
		name    string
		width   int
		height  int
		focused bool
	}{
		{name: "linear card", width: 60, height: 3},
		{name: "grid card", width: 20, height: 5},
		{name: "focused grid card", width: 20, height: 5, focused: true},
		{name: "narrow card", width: 6, height: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderCard(CardProps{Emoji: "🦄", Width: tt.width, Height: tt.height, Focused: tt.focused}, styles)

			if got := lipgloss.Width(out); got != tt.width {
				t.Errorf("card width = %d, want %d", got, tt.width)
			}
			if got := lipgloss.Height(out); got != tt.height {
				t.Errorf("card height = %d, want %d", got, tt.height)
			}
			if !strings.Contains(ansi.Strip(out), "🦄") {
				t.Error("card should contain its emoji")
			}
		})
	}
}

// TestRenderTopBarShowsDerivedToggle ensures the button reflects the UiState
func TestRenderTopBarShowsDerivedToggle(t *testing.T) {
	styles := NewStyles(*colors.Dark())

	linear := RenderTopBar(TopBarProps{Width: 80, UiState: state.NewUiState(true)}, styles)
	if !strings.Contains(ansi.Strip(linear.View), "Grid layout") {
		t.Error("linear layout should offer the grid toggle")
	}

	grid := RenderTopBar(TopBarProps{Width: 80, UiState: state.NewUiState(false), Dark: true}, styles)
	plain := ansi.Strip(grid.View)
	if !strings.Contains(plain, "List layout") {
		t.Error("grid layout should offer the list toggle")
	}
	if !strings.Contains(plain, RenderSwitch(true)) {
		t.Error("switch should render as on in dark mode")
	}
}

// TestRenderTopBarZones ensures the control zones point at the rendered controls
func TestRenderTopBarZones(t *testing.T) {
	bar := RenderTopBar(TopBarProps{Width: 80, UiState: state.NewUiState(true)}, NewStyles(*colors.Light()))

	if lipgloss.Height(bar.View) != TopBarHeight {
		t.Fatalf("top bar height = %d, want %d", lipgloss.Height(bar.View), TopBarHeight)
	}
	if lipgloss.Width(bar.View) != 80 {
		t.Errorf("top bar width = %d, want 80", lipgloss.Width(bar.View))
	}

	lines := strings.Split(ansi.Strip(bar.View), "\n")
	line := lines[1]
	toggleText := ansi.Cut(line, bar.Toggle.X0, bar.Toggle.X1)
	if !strings.HasPrefix(toggleText, "[") || !strings.HasSuffix(toggleText, "]") {
		t.Errorf("toggle zone covers %q, want the bracketed button", toggleText)
	}
	switchText := ansi.Cut(line, bar.Switch.X0, bar.Switch.X1)
	if switchText != RenderSwitch(false) {
		t.Errorf("switch zone covers %q, want %q", switchText, RenderSwitch(false))
	}
	if bar.Toggle.X1 > bar.Switch.X0 {
		t.Error("toggle and switch zones must not overlap")
	}
}

// TestZoneContains tests the end-exclusive bounds
func TestZoneContains(t *testing.T) {
	z := Zone{X0: 2, Y0: 0, X1: 4, Y1: 1}

	if !z.Contains(2, 0) || !z.Contains(3, 0) {
		t.Error("zone should contain its start cells")
	}
	if z.Contains(4, 0) || z.Contains(2, 1) {
		t.Error("zone end is exclusive")
	}
}

// TestRenderStatusBarFillsWidth tests that the status bar spans the screen
func TestRenderStatusBarFillsWidth(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 50, Help: "q quit", Info: "light"}, NewStyles(*colors.Light()))

	if got := lipgloss.Width(out); got != 50 {
		t.Errorf("status bar width = %d, want 50", got)
	}
}
