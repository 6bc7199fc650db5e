package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Course titles: bold cyan
	colorCourse = color.New(color.FgCyan, color.Bold)

	// Times: yellow so they pop
	colorTime = color.New(color.FgYellow)

	// Stats: green for totals
	colorStats = color.New(color.FgGreen)

	// Muted: secondary information, empty days
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatCourse formats a course title.
func formatCourse(s string) string {
	return colorCourse.Sprint(s)
}

// formatTime formats a time range.
func formatTime(s string) string {
	return colorTime.Sprint(s)
}

// formatStats formats totals.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
