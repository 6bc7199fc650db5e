// Package tui provides the terminal user interface for classdeck.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"classdeck/internal/config"
	"classdeck/internal/document"
	"classdeck/internal/schedule"
	"classdeck/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeForm         // Course form open - changes are in the edit buffer until submitted
	ModeConfirm      // Delete confirmation armed
)

// Position represents a cursor position in the grid: a day column and
// an item within it.
type Position struct {
	Day  int // 0=Monday, 6=Sunday
	Item int // index into the day column's items
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Schedule state. layout is rebuilt after every store mutation,
	// before the next render, so the source indices it carries are
	// never stale by the time a key acts on them.
	store  *schedule.Store
	layout []schedule.DayColumn

	// State
	cursor Position
	mode   Mode

	// Form state (nil outside ModeForm)
	form *FormModel

	// Confirmation state. confirmGen increments on every arming so the
	// auto-clear tick of a previous arming cannot cancel a newer one.
	confirmPos   int
	confirmTitle string
	confirmGen   int

	// Document path for save ("" disables the save key)
	docPath string

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Terminal dimensions
	width  int
	height int

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithEntries seeds the store.
func WithEntries(entries []schedule.Entry) ModelOption {
	return func(m *Model) {
		m.store.Add(entries...)
	}
}

// WithDocumentPath sets the save/load path for the working schedule.
func WithDocumentPath(path string) ModelOption {
	return func(m *Model) {
		m.docPath = path
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}

	m := &Model{
		config: cfg,
		theme:  t,
		styles: NewStyles(t),
		store:  schedule.NewStore(),
		mode:   ModeNormal,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.refreshLayout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshLayout rebuilds the per-day projection from the store and
// keeps the cursor on a valid position.
func (m *Model) refreshLayout() {
	m.layout = schedule.BuildLayout(m.store.All())
	m.clampCursor()
}

// clampCursor keeps the cursor inside the grid.
func (m *Model) clampCursor() {
	if m.cursor.Day < 0 {
		m.cursor.Day = 0
	}
	if m.cursor.Day >= len(m.layout) {
		m.cursor.Day = len(m.layout) - 1
	}
	items := len(m.layout[m.cursor.Day].Items)
	if items == 0 {
		m.cursor.Item = 0
		return
	}
	if m.cursor.Item >= items {
		m.cursor.Item = items - 1
	}
	if m.cursor.Item < 0 {
		m.cursor.Item = 0
	}
}

// selected returns the placed entry under the cursor.
func (m Model) selected() (schedule.Placed, bool) {
	col := m.layout[m.cursor.Day]
	if m.cursor.Item < 0 || m.cursor.Item >= len(col.Items) {
		return schedule.Placed{}, false
	}
	return col.Items[m.cursor.Item], true
}

// setStatus shows a temporary message.
func (m *Model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(d)
}

// Run starts the TUI.
func Run(cfg *config.Config, docPath string) error {
	return RunWithDebug(cfg, docPath, false)
}

// RunWithDebug starts the TUI with optional debug logging. When
// docPath names an existing file it is loaded into the store; a
// missing file just means an empty schedule that will be saved there.
func RunWithDebug(cfg *config.Config, docPath string, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	var entries []schedule.Entry
	if docPath != "" {
		if _, err := os.Stat(docPath); err == nil {
			entries, err = document.Load(docPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", docPath, err)
			}
		}
	}

	m := New(cfg, WithEntries(entries), WithDocumentPath(docPath))
	p := tea.NewProgram(*m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
