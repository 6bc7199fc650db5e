package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"classdeck/internal/document"
	"classdeck/internal/summary"
	"classdeck/internal/timefmt"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [document]",
		Short: "Print a schedule document as a weekly grid",
		Long: `Load a schedule document and print it day by day with class
times, instructors and rooms, followed by weekly totals.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			path := a.config.Schedule.DocumentPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no document given and no default document_path configured")
			}

			entries, err := document.Load(path)
			if err != nil {
				return err
			}

			week := summary.SummarizeWeek(entries)
			rule := strings.Repeat("─", min(termWidth(), 74))

			for _, col := range week.Layout {
				fmt.Printf("\n  %s\n%s\n", formatHeader(col.Day), rule)
				if len(col.Items) == 0 {
					fmt.Printf("  %s\n", formatMuted("no classes"))
					continue
				}
				for _, p := range col.Items {
					e := p.Entry
					times := fmt.Sprintf("%s - %s", timefmt.To12Hour(e.StartTime), timefmt.To12Hour(e.EndTime))
					fmt.Printf("  %s  %s (%s, %s)\n",
						formatTime(times), formatCourse(e.Title), e.DisplayInstructor(), e.DisplayRoom())
				}
			}

			fmt.Printf("\n%s\n", rule)
			fmt.Printf("  %s\n", formatStats(fmt.Sprintf("Classes: %d, %.1f hours/week",
				week.Stats.TotalClasses, week.Stats.TotalHours())))
			if week.Stats.BusiestDay != "" {
				fmt.Printf("  Busiest day: %s\n", week.Stats.BusiestDay)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
