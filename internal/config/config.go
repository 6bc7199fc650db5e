// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Export   ExportConfig   `toml:"export"`
	UI       UIConfig       `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// ScheduleConfig holds schedule entry defaults.
type ScheduleConfig struct {
	DefaultColor string `toml:"default_color"` // 6-hex-digit "#RRGGBB"
	DocumentPath string `toml:"document_path"` // default path for save/load/export
}

// ExportConfig holds image export settings.
type ExportConfig struct {
	PCWidth     int `toml:"pc_width"`     // viewport width for the pc size
	MobileWidth int `toml:"mobile_width"` // viewport width for the mobile size
	Height      int `toml:"height"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			DefaultColor: "#000000",
			DocumentPath: "",
		},
		Export: ExportConfig{
			PCWidth:     1920,
			MobileWidth: 390,
			Height:      1080,
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "classdeck", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Schedule.DocumentPath = expandPath(cfg.Schedule.DocumentPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLASSDECK_DEFAULT_COLOR"); v != "" {
		cfg.Schedule.DefaultColor = v
	}
	if v := os.Getenv("CLASSDECK_DOCUMENT_PATH"); v != "" {
		cfg.Schedule.DocumentPath = v
	}
	if v := os.Getenv("CLASSDECK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateColor(c.Schedule.DefaultColor); err != nil {
		return err
	}
	if c.Export.PCWidth <= 0 || c.Export.MobileWidth <= 0 || c.Export.Height <= 0 {
		return errors.New("export dimensions must be positive")
	}
	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}
	return nil
}

// validateColor checks for a "#RRGGBB" hex color.
func validateColor(c string) error {
	if len(c) != 7 || c[0] != '#' {
		return fmt.Errorf("default_color must be \"#RRGGBB\", got %q", c)
	}
	for _, r := range c[1:] {
		if !isHexDigit(r) {
			return fmt.Errorf("default_color must be \"#RRGGBB\", got %q", c)
		}
	}
	return nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
