package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"classdeck/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), 5*time.Second)
		LogError("command", msg.Err)
		return m, commands.ClearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, 3*time.Second)
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.ConfirmExpiredMsg:
		// The tick of an earlier arming, or of one already resolved by
		// the user, is a no-op.
		if m.mode == ModeConfirm && msg.Gen == m.confirmGen {
			m.mode = ModeNormal
			LogModeChange(ModeConfirm, ModeNormal, "confirm timeout")
		}
		return m, nil

	case commands.ExportDoneMsg:
		m.setStatus(fmt.Sprintf("Exported %d classes to %s", msg.Count, msg.Path), 3*time.Second)
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.DocumentSavedMsg:
		m.setStatus(fmt.Sprintf("Saved %d classes to %s", msg.Count, msg.Path), 3*time.Second)
		return m, commands.ClearStatusAfter(3 * time.Second)
	}

	// Forward everything else (cursor blinks etc.) to the form.
	if m.mode == ModeForm && m.form != nil {
		cmd := m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}
