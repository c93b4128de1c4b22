package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/emojiboard/internal/tui/huhforms"
)

// SettingsCmd returns the settings subcommand
func SettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Edit appearance settings interactively",
		Long: `Edit the theme, initial layout and dynamic color preference,
then save them to the config file.`,
		RunE: runSettings,
	}
}

func runSettings(cmd *cobra.Command, args []string) error {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	cfg := cliInstance.Config

	values := huhforms.NewSettingsValues(cfg.Appearance)
	form := huhforms.CreateSettingsForm(values, huhforms.CreateTheme(cliPalette(cfg)))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Settings unchanged")
			return nil
		}
		return fmt.Errorf("settings form: %w", err)
	}

	if !values.Confirm {
		fmt.Fprintln(cmd.OutOrStdout(), "Settings unchanged")
		return nil
	}

	if err := values.Apply(&cfg.Appearance); err != nil {
		return WithExitCode(ExitValidation, err)
	}
	if err := saveConfig(cliInstance); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	slog.Info("settings saved",
		"theme", cfg.Appearance.Theme,
		"layout", cfg.Appearance.Layout,
		"dynamic_color", cfg.Appearance.DynamicColorEnabled(),
	)
	fmt.Fprintln(cmd.OutOrStdout(), "Settings saved")
	return nil
}

func saveConfig(c *CLI) error {
	if c.ConfigPath != "" {
		return c.Config.SaveFile(c.ConfigPath)
	}
	return c.Config.Save()
}
