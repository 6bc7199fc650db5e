package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"classdeck/internal/document"
	"classdeck/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format string
		size   string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export [document]",
		Short: "Export a schedule document as a PNG image or iCalendar file",
		Long: `Load a schedule document and export it.

Formats:
  png   a screenshot of the weekly grid (requires a Chromium install)
  ics   an iCalendar feed with one weekly recurring event per class

Example:
  classdeck export schedule.toml --format png --size mobile`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			switch format {
			case "png":
				exportSize := export.Size(size)
				switch exportSize {
				case export.SizePC, export.SizeMobile:
				default:
					return fmt.Errorf("unknown size %q (want pc or mobile)", size)
				}
				if out == "" {
					out = export.OutputName(exportSize)
				}

				width := a.config.Export.PCWidth
				if exportSize == export.SizeMobile {
					width = a.config.Export.MobileWidth
				}
				err := export.CapturePNG(cmd.Context(), entries, export.CaptureOptions{
					OutputPath: out,
					Size:       exportSize,
					Width:      width,
					Height:     a.config.Export.Height,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Exported %d classes to %s\n", len(entries), out)
				return nil

			case "ics":
				if out == "" {
					out = "class-schedule.ics"
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer func() { _ = f.Close() }()
				if err := export.WriteICS(f, entries, time.Now()); err != nil {
					return err
				}
				fmt.Printf("Exported %d classes to %s\n", len(entries), out)
				return nil

			default:
				return fmt.Errorf("unknown format %q (want png or ics)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "png", "Export format: png or ics")
	cmd.Flags().StringVar(&size, "size", "pc", "PNG viewport size: pc or mobile")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to class-schedule-<size>.png or class-schedule.ics)")
	return cmd
}
