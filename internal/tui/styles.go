package tui

import (
	"github.com/charmbracelet/lipgloss"

	"classdeck/internal/tui/theme"
)

// Default column width - recalculated from the terminal width.
const defaultColWidth = 18

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg        lipgloss.Color
	colorHighlight lipgloss.Color
	colorSelection lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style

	// Day headers
	DayHeaderStyle       lipgloss.Style
	DayHeaderActiveStyle lipgloss.Style

	// Entry cards
	CardStyle       lipgloss.Style
	CardCursorStyle lipgloss.Style

	// Empty day placeholder
	EmptyStyle lipgloss.Style

	// Form
	FormPanelStyle lipgloss.Style
	FormLabelStyle lipgloss.Style
	FormFocusStyle lipgloss.Style
	FormErrorStyle lipgloss.Style

	// Confirmation dialog
	ConfirmPanelStyle lipgloss.Style
	ConfirmWarnStyle  lipgloss.Style

	// Status and help
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorHighlight: theme.Color(t.BgHighlight),
		colorSelection: theme.Color(t.BgSelection),
		colorFg:        theme.Color(t.Fg),
		colorFgMuted:   theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorWarning:   theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true).
		Align(lipgloss.Center)

	s.DayHeaderActiveStyle = s.DayHeaderStyle.
		Foreground(s.colorAccent).
		Underline(true)

	s.CardStyle = lipgloss.NewStyle().
		Padding(0, 1)

	s.CardCursorStyle = s.CardStyle.
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(s.colorAccent)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Align(lipgloss.Center)

	s.FormPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(1, 2)

	s.FormLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.FormFocusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.FormErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.ConfirmPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorWarning).
		Padding(1, 2)

	s.ConfirmWarnStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorHighlight).
		Padding(0, 1)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Padding(0, 1)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	return s
}
