package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"classdeck/internal/export"
	"classdeck/internal/schedule"
	"classdeck/internal/summary"
	"classdeck/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
			m.clampCursor()
		}
	case "l", "right":
		if m.cursor.Day < len(m.layout)-1 {
			m.cursor.Day++
			m.clampCursor()
		}
	case "j", "down":
		if m.cursor.Item < len(m.layout[m.cursor.Day].Items)-1 {
			m.cursor.Item++
		}
	case "k", "up":
		if m.cursor.Item > 0 {
			m.cursor.Item--
		}

	// Course form
	case "a":
		m.form = newFormCreate(m.config.Schedule.DefaultColor)
		m.mode = ModeForm
		LogModeChange(ModeNormal, ModeForm, "create")

	case "e", "enter":
		placed, ok := m.selected()
		if !ok {
			return m, commands.Status("Nothing to edit here")
		}
		group := schedule.GroupByTitle(m.store.All(), placed.Entry.Title)
		form, err := newFormEdit(group)
		if err != nil {
			return m, commands.Status("Error: " + err.Error())
		}
		m.form = form
		m.mode = ModeForm
		LogModeChange(ModeNormal, ModeForm, "edit")

	// Deletion (armed, confirmed in ModeConfirm)
	case "d":
		placed, ok := m.selected()
		if !ok {
			return m, commands.Status("Nothing to delete here")
		}
		m.confirmPos = placed.SourceIndex
		m.confirmTitle = placed.Entry.Title
		m.confirmGen++
		m.mode = ModeConfirm
		LogModeChange(ModeNormal, ModeConfirm, "delete armed")
		return m, commands.ConfirmTimer(m.confirmGen)

	// Export
	case "x", "X":
		if m.store.Len() == 0 {
			return m, commands.Status("Nothing to export")
		}
		size := export.SizePC
		width := m.config.Export.PCWidth
		if msg.String() == "X" {
			size = export.SizeMobile
			width = m.config.Export.MobileWidth
		}
		return m, tea.Batch(
			commands.Status("Exporting PNG..."),
			commands.ExportPNG(m.store.All(), export.CaptureOptions{
				OutputPath: export.OutputName(size),
				Size:       size,
				Width:      width,
				Height:     m.config.Export.Height,
			}),
		)

	case "i":
		if m.store.Len() == 0 {
			return m, commands.Status("Nothing to export")
		}
		return m, commands.ExportICS(m.store.All(), "class-schedule.ics")

	// Clipboard
	case "y":
		text := summary.SummarizeWeek(m.store.All()).Text()
		if err := clipboard.WriteAll(text); err != nil {
			return m, commands.Status("Error: " + err.Error())
		}
		return m, commands.Status("Week summary copied")

	// Save document
	case "s":
		if m.docPath == "" {
			return m, commands.Status("No document path (start with --open)")
		}
		return m, commands.SaveDocument(m.docPath, m.store.All())
	}

	return m, nil
}

// handleConfirmKeys handles the armed delete confirmation: delete the
// one entry, delete every entry of the course, or cancel.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o", "enter":
		if schedule.DeleteOne(m.store, m.confirmPos) {
			m.setStatus("Deleted 1 class", 3*time.Second)
		}
		m.mode = ModeNormal
		m.refreshLayout()
		LogModeChange(ModeConfirm, ModeNormal, "delete one")
		return m, commands.ClearStatusAfter(3 * time.Second)

	case "a":
		title := m.confirmTitle
		if n := schedule.DeleteAllSimilar(m.store, m.confirmPos); n > 0 {
			m.setStatus("Deleted all "+title+" classes", 3*time.Second)
		}
		m.mode = ModeNormal
		m.refreshLayout()
		LogModeChange(ModeConfirm, ModeNormal, "delete all similar")
		return m, commands.ClearStatusAfter(3 * time.Second)

	case "esc", "n", "c", "q":
		m.mode = ModeNormal
		LogModeChange(ModeConfirm, ModeNormal, "cancelled")
		return m, nil
	}

	return m, nil
}

// handleFormKeys handles keys while the course form is open.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = ModeNormal
		LogModeChange(ModeForm, ModeNormal, "form cancelled")
		return m, nil

	case "tab", "down":
		m.form.FocusNext()
		return m, nil

	case "shift+tab", "up":
		m.form.FocusPrev()
		return m, nil

	case "ctrl+a":
		m.form.AddRow()
		return m, nil

	case "ctrl+r":
		m.form.RemoveFocusedRow()
		return m, nil

	case "ctrl+t":
		m.form.ToggleAmPm()
		return m, nil

	case "left", "right":
		// Day fields cycle; everything else edits text.
		if kind, _ := m.form.fieldAt(m.form.focus); kind == fieldDay {
			if msg.String() == "left" {
				m.form.CycleDay(-1)
			} else {
				m.form.CycleDay(1)
			}
			return m, nil
		}

	case "enter":
		entries, err := m.form.Submit()
		if err != nil {
			// Validation failed: stay in the form, nothing was stored.
			return m, nil
		}
		m.store.ReplaceAll(m.form.Reconcile(m.store.All(), entries))
		m.form = nil
		m.mode = ModeNormal
		m.refreshLayout()
		LogModeChange(ModeForm, ModeNormal, "form submitted")
		return m, commands.Status("Schedule updated")
	}

	cmd := m.form.Update(msg)
	return m, cmd
}
