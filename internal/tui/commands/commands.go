// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"classdeck/internal/document"
	"classdeck/internal/export"
	"classdeck/internal/schedule"
)

// ConfirmTimeout is how long an armed delete confirmation stays open
// before clearing itself.
const ConfirmTimeout = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ConfirmExpiredMsg is sent when an armed delete confirmation times
// out. Gen identifies which arming the tick belongs to; a stale tick
// is ignored.
type ConfirmExpiredMsg struct {
	Gen int
}

// ExportDoneMsg is sent when an export command finishes.
type ExportDoneMsg struct {
	Path  string
	Count int
}

// DocumentSavedMsg is sent when the working schedule was written out.
type DocumentSavedMsg struct {
	Path  string
	Count int
}

// Status creates a command that shows msg and schedules its clear.
func Status(msg string) tea.Cmd {
	return func() tea.Msg { return StatusMsgCmd{Msg: msg} }
}

// ClearStatusAfter schedules a status clear.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ConfirmTimer starts the auto-clear countdown for an armed delete
// confirmation.
func ConfirmTimer(gen int) tea.Cmd {
	return tea.Tick(ConfirmTimeout, func(time.Time) tea.Msg {
		return ConfirmExpiredMsg{Gen: gen}
	})
}

// ExportPNG captures the entries to a PNG in the background. The core
// does no further work; completion or failure comes back as a message.
func ExportPNG(entries []schedule.Entry, opts export.CaptureOptions) tea.Cmd {
	return func() tea.Msg {
		if err := export.CapturePNG(context.Background(), entries, opts); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportDoneMsg{Path: opts.OutputPath, Count: len(entries)}
	}
}

// ExportICS writes the entries as an iCalendar file in the background.
func ExportICS(entries []schedule.Entry, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating %s: %w", path, err)}
		}
		defer func() { _ = f.Close() }()
		if err := export.WriteICS(f, entries, time.Now()); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportDoneMsg{Path: path, Count: len(entries)}
	}
}

// SaveDocument writes the working schedule to path.
func SaveDocument(path string, entries []schedule.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := document.Save(path, entries); err != nil {
			return ErrMsg{Err: err}
		}
		return DocumentSavedMsg{Path: path, Count: len(entries)}
	}
}
