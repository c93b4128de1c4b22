package cli

import (
	"fmt"

	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
)

// CLI represents the CLI application context
type CLI struct {
	Config *config.Config
	Items  emoji.Source

	// ConfigPath is the file the config was read from, "" for the default location
	ConfigPath string
}

// NewCLI loads the configuration and the emoji list.
// An empty configPath selects the default location.
func NewCLI(configPath string) (*CLI, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(configPath)
	}
	if err != nil {
		return nil, WithExitCode(ExitDataErr, fmt.Errorf("failed to load config: %w", err))
	}

	c, err := NewCLIFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.ConfigPath = configPath
	return c, nil
}

// NewCLIFromConfig validates an already loaded configuration
func NewCLIFromConfig(cfg *config.Config) (*CLI, error) {
	for _, p := range []config.Palette{cfg.Light, cfg.Dark} {
		if err := ValidatePalette(p); err != nil {
			return nil, WithExitCode(ExitValidation, err)
		}
	}

	items := emoji.Default()
	if len(cfg.Emoji) > 0 {
		if err := emoji.Validate(cfg.Emoji); err != nil {
			return nil, WithExitCode(ExitDataErr, fmt.Errorf("invalid emoji list: %w", err))
		}
		items = emoji.New(cfg.Emoji)
	}

	return &CLI{Config: cfg, Items: items}, nil
}
