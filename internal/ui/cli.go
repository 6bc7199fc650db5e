// Package ui provides the command line interface for classdeck.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"classdeck/internal/config"
	"classdeck/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	open   string
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "classdeck",
		Short: "A terminal tool for building weekly class schedules",
		Long: `Classdeck builds recurring weekly class schedules in the terminal.

Enter courses with their meeting days and times, view them on a weekly
grid, and export the result as a PNG image or an iCalendar file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			open := a.open
			if open == "" {
				open = a.config.Schedule.DocumentPath
			}
			return tui.RunWithDebug(a.config, open, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a local file)")
	a.root.Flags().StringVar(&a.open, "open", "", "Schedule document to load on startup")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("classdeck %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
