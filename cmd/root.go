package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/emojiboard/internal/cli"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/launcher"
	"github.com/thenoetrevino/emojiboard/internal/logging"
)

var (
	configPath string
	debug      bool

	gridFlag       bool
	linearFlag     bool
	themeFlag      string
	noDynamicColor bool

	logCloser io.Closer
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emojiboard",
		Short: "Emojiboard - browse an emoji release in your terminal",
		Long: `Emojiboard shows a list of emoji as a single column or a 3-column grid.
Switch layouts and light/dark mode from the top bar, and tap an emoji
(click it, or press enter on it) to see its value.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		RunE:               runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/emojiboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug messages to the log file")

	rootCmd.Flags().BoolVar(&gridFlag, "grid", false, "Start in the 3-column grid layout")
	rootCmd.Flags().BoolVar(&linearFlag, "linear", false, "Start in the single-column list layout")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Initial theme: auto, light or dark")
	rootCmd.Flags().BoolVar(&noDynamicColor, "no-dynamic-color", false, "Use the fixed palettes even when the terminal reports its colors")
	rootCmd.MarkFlagsMutuallyExclusive("grid", "linear")

	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.SettingsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup initializes logging and loads the configuration for every command
func setup(cmd *cobra.Command, args []string) error {
	closer, err := logging.Init(debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer

	cliInstance, err := cli.NewCLI(configPath)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		_ = teardown(cmd, args)
		return err
	}

	cmd.SetContext(cli.WithCLI(cmd.Context(), cliInstance))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	cfg := *cliInstance.Config
	if err := applyFlags(&cfg.Appearance); err != nil {
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	return launcher.Launch(cmd.Context(), &cfg, cliInstance.Items)
}

// applyFlags overrides the loaded appearance for this session only
func applyFlags(a *config.Appearance) error {
	switch {
	case gridFlag:
		a.Layout = config.LayoutGrid
	case linearFlag:
		a.Layout = config.LayoutLinear
	}

	if themeFlag != "" {
		theme, err := cli.ParseTheme(themeFlag)
		if err != nil {
			return err
		}
		a.Theme = theme
	}

	if noDynamicColor {
		a.SetDynamicColor(false)
	}
	return nil
}
