// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"classdeck/internal/schedule"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // base background
	BgHighlight string // cells, subtle highlight
	BgSelection string // cursor, selection
	Fg          string // primary foreground
	FgMuted     string // placeholders, muted elements
	Accent      string // title, borders
	Warning     string // destructive prompts
}

var themes = map[string]Theme{
	"dark": {
		Name:        "dark",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Warning:     "#f38ba8",
	},
	"light": {
		Name:        "light",
		Bg:          "#eff1f5",
		BgHighlight: "#e6e9ef",
		BgSelection: "#ccd0da",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Warning:     "#d20f39",
	},
}

// Load returns a theme by name. The empty name means dark; an unknown
// name is an error.
func Load(name string) (*Theme, error) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		if name == "" {
			t = themes["dark"]
			return &t, nil
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &t, nil
}

// Available returns the known theme names.
func Available() []string {
	return []string{"dark", "light"}
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// TextOn picks a readable foreground for the given "#RRGGBB"
// background: dark text over light backgrounds, white over dark ones.
// Unparseable backgrounds get white.
func TextOn(background string) lipgloss.Color {
	return lipgloss.Color(schedule.TextColor(background))
}
