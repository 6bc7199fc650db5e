package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"classdeck/internal/schedule"
	"classdeck/internal/timefmt"
	"classdeck/internal/tui/theme"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeForm:
		return m.renderForm()
	case ModeConfirm:
		return m.renderConfirm()
	}

	title := m.styles.TitleStyle.Render("classdeck · weekly schedule")
	grid := m.renderGrid()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, title, "", grid, "", footer)
}

// colWidth splits the terminal width evenly across the seven day
// columns, with a sane floor for narrow terminals.
func (m Model) colWidth() int {
	w := (m.width - 1) / len(schedule.Days)
	if w < 10 {
		w = defaultColWidth
	}
	return w
}

func (m Model) renderGrid() string {
	width := m.colWidth()

	cols := make([]string, 0, len(m.layout))
	for dayIdx, col := range m.layout {
		header := m.styles.DayHeaderStyle
		if dayIdx == m.cursor.Day {
			header = m.styles.DayHeaderActiveStyle
		}

		parts := []string{header.Width(width).Render(col.Day)}
		if len(col.Items) == 0 {
			parts = append(parts, m.styles.EmptyStyle.Width(width).Render("no classes"))
		}
		for itemIdx, placed := range col.Items {
			selected := dayIdx == m.cursor.Day && itemIdx == m.cursor.Item
			parts = append(parts, m.renderCard(placed.Entry, width, selected))
		}

		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderCard renders one class as a colored block. The text color is
// picked from the card background so light colors stay readable.
func (m Model) renderCard(e schedule.Entry, width int, selected bool) string {
	bg := e.DisplayColor()
	fg := theme.TextOn(bg)

	style := m.styles.CardStyle
	if selected {
		style = m.styles.CardCursorStyle
	}
	style = style.
		Background(lipgloss.Color(bg)).
		Foreground(fg).
		Width(width - 2)

	times := fmt.Sprintf("%s - %s",
		timefmt.To12Hour(e.StartTime), timefmt.To12Hour(e.EndTime))

	lines := []string{
		ansi.Truncate(e.Title, width-3, "…"),
		ansi.Truncate(times, width-3, "…"),
		ansi.Truncate(e.DisplayInstructor(), width-3, "…"),
		ansi.Truncate(e.DisplayRoom(), width-3, "…"),
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	help := m.styles.HelpStyle.Render(
		"hjkl move · a add · e edit · d delete · x/X png · i ics · y copy · s save · q quit")
	if m.statusMsg == "" {
		return help
	}
	status := m.styles.StatusStyle.Render(m.statusMsg)
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}

func (m Model) renderForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	label := func(focus int, text string) string {
		if f.focus == focus {
			return m.styles.FormFocusStyle.Render("> " + text)
		}
		return m.styles.FormLabelStyle.Render("  " + text)
	}

	heading := "New course"
	if f.Editing() {
		heading = "Edit course"
	}

	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render(heading) + "\n\n")
	b.WriteString(label(int(fieldTitle), "Title      ") + f.title.View() + "\n")
	b.WriteString(label(int(fieldInstructor), "Instructor ") + f.instructor.View() + "\n")
	b.WriteString(label(int(fieldRoom), "Room       ") + f.room.View() + "\n")
	b.WriteString(label(int(fieldColor), "Color      ") + f.color.View() + "\n\n")

	// Newest slot first, numbered from the top.
	for i, row := range f.rows {
		base := scalarFields + i*rowFields
		day := f.buffer.Rows[i].Day
		if day == "" {
			day = "(pick a day)"
		}
		b.WriteString(fmt.Sprintf("Slot %d\n", len(f.rows)-i))
		b.WriteString(label(base, "Day   ") + day + "\n")
		b.WriteString(label(base+1, "Start ") + row.start.View() + "\n")
		b.WriteString(label(base+2, "End   ") + row.end.View() + "\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + m.styles.FormErrorStyle.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + m.styles.HelpStyle.Render(
		"tab/shift+tab move · ←/→ day · ctrl+t am/pm · ctrl+a add slot · ctrl+r remove slot · enter save · esc cancel"))

	return m.styles.FormPanelStyle.Render(b.String())
}

func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ConfirmWarnStyle.Render("Delete class?") + "\n\n")
	b.WriteString(fmt.Sprintf("Course: %s\n\n", ansi.Truncate(m.confirmTitle, 40, "…")))
	b.WriteString("  o / enter  delete this class\n")
	b.WriteString("  a          delete all " + ansi.Truncate(m.confirmTitle, 30, "…") + " classes\n")
	b.WriteString("  esc        cancel\n\n")
	b.WriteString(m.styles.HelpStyle.Render("clears itself after 3 seconds"))

	panel := m.styles.ConfirmPanelStyle.Render(b.String())
	grid := m.renderGrid()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.TitleStyle.Render("classdeck · weekly schedule"), "", grid, "", panel)
}
