package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Appearance  Appearance  `yaml:"appearance"`
	Light       Palette     `yaml:"light"`
	Dark        Palette     `yaml:"dark"`

	// Emoji replaces the built-in emoji list when non-empty
	Emoji []string `yaml:"emoji,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Appearance:  DefaultAppearance(),
		Light:       LightPalette(),
		Dark:        DarkPalette(),
	}
}

// loadThemeFile loads and merges palettes from EMOJIBOARD_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("EMOJIBOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Light Palette `yaml:"light"`
		Dark  Palette `yaml:"dark"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Light.MergeFrom(themeConfig.Light, false)
		config.Dark.MergeFrom(themeConfig.Dark, false)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path
// Returns default config if file doesn't exist
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	config.applyDefaults()
	loadThemeFile(&config)

	if err := config.Appearance.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config to an explicit path
func (c *Config) SaveFile(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "emojiboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "emojiboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Appearance.applyDefaults()

	c.Light.Preset = "light"
	c.Light.ApplyDefaults()
	c.Dark.Preset = "dark"
	c.Dark.ApplyDefaults()
}
