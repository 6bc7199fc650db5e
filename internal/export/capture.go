package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"classdeck/internal/schedule"
)

// Size selects the export viewport.
type Size string

const (
	SizePC     Size = "pc"
	SizeMobile Size = "mobile"
)

// Default capture parameters. Widths match the page layouts the grid
// template was designed for.
const (
	DefaultPCWidth     = 1920
	DefaultMobileWidth = 390
	DefaultHeight      = 1080
	DefaultTimeout     = 30 * time.Second
)

// CaptureOptions defines parameters for a Chromium-based screenshot capture.
type CaptureOptions struct {
	// OutputPath is where the PNG will be written, e.g. "class-schedule-pc.png".
	OutputPath string

	// Size selects the pc or mobile viewport width. Defaults to pc.
	Size Size

	// Width and Height override the viewport dimensions. If zero, the
	// defaults for Size are used.
	Width  int
	Height int

	// Timeout bounds the entire capture operation. If zero, DefaultTimeout
	// is used.
	Timeout time.Duration
}

// CapturePNG renders the entries to a temporary HTML page, opens it in
// a headless Chromium instance via chromedp, waits for the grid's
// data-ready attribute, and screenshots it to opts.OutputPath.
func CapturePNG(parentCtx context.Context, entries []schedule.Entry, opts CaptureOptions) error {
	if opts.OutputPath == "" {
		return fmt.Errorf("capture: OutputPath is required")
	}
	if opts.Size == "" {
		opts.Size = SizePC
	}
	if opts.Width <= 0 {
		if opts.Size == SizeMobile {
			opts.Width = DefaultMobileWidth
		} else {
			opts.Width = DefaultPCWidth
		}
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	pageURL, cleanup, err := writeTempPage(entries)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(`[data-ready="true"]`, chromedp.ByQuery),
		chromedp.FullScreenshot(&png, 100),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("capture: chromedp run failed: %w", err)
	}

	if err := os.WriteFile(opts.OutputPath, png, 0o644); err != nil {
		return fmt.Errorf("capture: failed to write PNG: %w", err)
	}

	return nil
}

// writeTempPage renders the grid page into a temp file and returns its
// file:// URL plus a cleanup func.
func writeTempPage(entries []schedule.Entry) (string, func(), error) {
	dir, err := os.MkdirTemp("", "classdeck-export-*")
	if err != nil {
		return "", nil, fmt.Errorf("capture: creating temp dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	path := filepath.Join(dir, "schedule.html")
	f, err := os.Create(path)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("capture: creating page file: %w", err)
	}
	if err := WriteHTML(f, entries); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("capture: closing page file: %w", err)
	}

	return "file://" + path, cleanup, nil
}

// OutputName returns the conventional PNG filename for a size.
func OutputName(size Size) string {
	if size == "" {
		size = SizePC
	}
	return fmt.Sprintf("class-schedule-%s.png", size)
}
