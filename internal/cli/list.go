package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/emojiboard/internal/cli/styles"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
	"github.com/thenoetrevino/emojiboard/internal/tui/render"
)

// LayoutResult is the printed form of the emoji list in one layout
type LayoutResult struct {
	Layout  string     `json:"layout"`
	Columns int        `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewLayoutResult arranges items for the given layout
func NewLayoutResult(items emoji.Source, linear bool) LayoutResult {
	if linear {
		return LayoutResult{Layout: config.LayoutLinear, Columns: 1, Rows: render.LinearRows(items)}
	}
	return LayoutResult{Layout: config.LayoutGrid, Columns: render.GridColumns, Rows: render.GridRows(items)}
}

// Quiet returns one emoji per line, in order
func (r LayoutResult) Quiet() []string {
	var out []string
	for _, row := range r.Rows {
		out = append(out, row...)
	}
	return out
}

// Human renders the rows inside a card
func (r LayoutResult) Human() string {
	title := styles.TitleStyle.Render(fmt.Sprintf("Emoji Release (%s)", r.Layout))
	if len(r.Rows) == 0 {
		return title + "\n" + styles.SubtitleStyle.Render("No emoji to show")
	}

	cellWidth := 0
	for _, row := range r.Rows {
		for _, item := range row {
			cellWidth = max(cellWidth, lipgloss.Width(item))
		}
	}
	cell := styles.CellStyle.Width(cellWidth + 2)

	lines := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := make([]string, 0, len(row))
		for _, item := range row {
			cells = append(cells, cell.Render(item))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return title + "\n" + styles.CardStyle.Render(strings.Join(lines, "\n"))
}

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the emoji list without starting the TUI",
		Long: `Print the emoji list in the list or grid layout.

Examples:
  # Human-readable list in the configured layout
  emojiboard list

  # Three-column grid
  emojiboard list --grid

  # JSON output for scripts
  emojiboard list --grid --json

  # Quiet mode (one emoji per line)
  emojiboard list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().Bool("grid", false, "Use the 3-column grid layout")
	cmd.Flags().Bool("linear", false, "Use the single-column list layout")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (one emoji per line)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	grid, _ := cmd.Flags().GetBool("grid")
	linearFlag, _ := cmd.Flags().GetBool("linear")

	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	if grid && linearFlag {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_FLAGS",
			"--grid and --linear are mutually exclusive",
			"Pass only one layout flag"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return WithExitCode(ExitUsage, fmt.Errorf("conflicting layout flags"))
	}

	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	linear := cliInstance.Config.Appearance.IsLinearLayout()
	switch {
	case grid:
		linear = false
	case linearFlag:
		linear = true
	}

	styles.Init(cliPalette(cliInstance.Config))
	return formatter.Success(NewLayoutResult(cliInstance.Items, linear))
}

// cliPalette picks the configured palette for plain output.
// Auto falls back to light since there is no terminal query here.
func cliPalette(cfg *config.Config) config.Palette {
	if cfg.Appearance.Theme == config.ThemeDark {
		return cfg.Dark
	}
	return cfg.Light
}
