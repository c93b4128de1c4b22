package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/emojiboard/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	themeContent := []byte(`light:
  primary: "#FF0000"
dark:
  background: "#00FF00"
  surface: "#0000FF"
`)
	themePath := filepath.Join(tempDir, "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("EMOJIBOARD_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Light.Primary != "#FF0000" {
		t.Errorf("Expected light primary to be #FF0000, got %s", cfg.Light.Primary)
	}
	if cfg.Dark.Background != "#00FF00" {
		t.Errorf("Expected dark background to be #00FF00, got %s", cfg.Dark.Background)
	}
	if cfg.Dark.Surface != "#0000FF" {
		t.Errorf("Expected dark surface to be #0000FF, got %s", cfg.Dark.Surface)
	}

	// Verify other colors still have defaults
	if cfg.Light.Surface != "#9B7BD2" {
		t.Errorf("Expected light surface default #9B7BD2, got %s", cfg.Light.Surface)
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EMOJIBOARD_THEME_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Light.Primary != colors.Light().Primary {
		t.Errorf("Expected default light primary, got %s", cfg.Light.Primary)
	}
}

func TestPaletteApplyDefaults(t *testing.T) {
	p := colors.Palette{Preset: "dark", Primary: "#123456"}
	p.ApplyDefaults()

	if p.Primary != "#123456" {
		t.Errorf("ApplyDefaults overwrote custom primary: %s", p.Primary)
	}
	if p.OnPrimary != colors.Dark().OnPrimary {
		t.Errorf("OnPrimary = %s, want dark default %s", p.OnPrimary, colors.Dark().OnPrimary)
	}
}

func TestGetPresetUnknownFallsBackToLight(t *testing.T) {
	if got := colors.GetPreset("solarized"); got.Preset != "light" {
		t.Errorf("GetPreset(solarized).Preset = %s, want light", got.Preset)
	}
}
