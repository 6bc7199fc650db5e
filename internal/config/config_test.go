package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.DefaultColor != "#000000" {
		t.Errorf("DefaultColor = %q, want #000000", cfg.Schedule.DefaultColor)
	}
	if cfg.Export.PCWidth != 1920 || cfg.Export.MobileWidth != 390 {
		t.Errorf("export widths = %d/%d, want 1920/390", cfg.Export.PCWidth, cfg.Export.MobileWidth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[schedule]
default_color = "#4F46E5"

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Schedule.DefaultColor != "#4F46E5" {
		t.Errorf("DefaultColor = %q, want #4F46E5", cfg.Schedule.DefaultColor)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	// Untouched sections keep defaults.
	if cfg.Export.PCWidth != 1920 {
		t.Errorf("PCWidth = %d, want default 1920", cfg.Export.PCWidth)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLASSDECK_DEFAULT_COLOR", "#FF0000")
	t.Setenv("CLASSDECK_UI_THEME", "light")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Schedule.DefaultColor != "#FF0000" {
		t.Errorf("DefaultColor = %q, want #FF0000", cfg.Schedule.DefaultColor)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad color", mutate: func(c *Config) { c.Schedule.DefaultColor = "black" }, wantErr: true},
		{name: "short color", mutate: func(c *Config) { c.Schedule.DefaultColor = "#FFF" }, wantErr: true},
		{name: "non-hex color", mutate: func(c *Config) { c.Schedule.DefaultColor = "#GGGGGG" }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.Export.PCWidth = 0 }, wantErr: true},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "solarized" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Schedule.DefaultColor = "#123ABC"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.Schedule.DefaultColor != "#123ABC" {
		t.Errorf("reloaded DefaultColor = %q, want #123ABC", loaded.Schedule.DefaultColor)
	}
}
