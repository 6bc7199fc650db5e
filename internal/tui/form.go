package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"classdeck/internal/editor"
	"classdeck/internal/schedule"
	"classdeck/internal/timefmt"
)

// Form field kinds, in focus order. The scalar fields come first, then
// day/start/end repeating per row.
type fieldKind int

const (
	fieldTitle fieldKind = iota
	fieldInstructor
	fieldRoom
	fieldColor
	fieldDay
	fieldStart
	fieldEnd
)

const (
	scalarFields = 4
	rowFields    = 3
)

// rowInputs holds the time inputs for one buffer row. The day value
// lives on the buffer row itself and is cycled, not typed.
type rowInputs struct {
	start textinput.Model
	end   textinput.Model
}

// FormModel is the course form: an edit buffer plus the text inputs
// editing it. Input values are synced into the buffer on submit.
type FormModel struct {
	buffer *editor.Buffer

	title      textinput.Model
	instructor textinput.Model
	room       textinput.Model
	color      textinput.Model
	rows       []rowInputs

	focus  int
	errMsg string
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.SetValue(value)
	return ti
}

func newRowInputs(start, end string) rowInputs {
	s := newInput("HH:MM", start, 5)
	s.Width = 5
	e := newInput("HH:MM", end, 5)
	e.Width = 5
	return rowInputs{start: s, end: e}
}

// newFormCreate builds a form for a new course.
func newFormCreate(defaultColor string) *FormModel {
	b := editor.NewCreate()
	if defaultColor != "" {
		b.Color = defaultColor
	}
	return newForm(b)
}

// newFormEdit builds a form seeded from an existing course group.
func newFormEdit(group []schedule.Entry) (*FormModel, error) {
	b, err := editor.NewEdit(group)
	if err != nil {
		return nil, err
	}
	return newForm(b), nil
}

func newForm(b *editor.Buffer) *FormModel {
	f := &FormModel{
		buffer:     b,
		title:      newInput("Course title", b.Title, 128),
		instructor: newInput("TBA", b.Instructor, 128),
		room:       newInput("TBA", b.Room, 64),
		color:      newInput("#RRGGBB", b.Color, 7),
	}
	for _, r := range b.Rows {
		f.rows = append(f.rows, newRowInputs(r.StartTime, r.EndTime))
	}
	f.applyFocus()
	return f
}

// numFields returns the total number of focusable fields.
func (f *FormModel) numFields() int {
	return scalarFields + rowFields*len(f.rows)
}

// fieldAt maps a focus index to its kind and row.
func (f *FormModel) fieldAt(focus int) (kind fieldKind, row int) {
	if focus < scalarFields {
		return fieldKind(focus), -1
	}
	rest := focus - scalarFields
	return fieldDay + fieldKind(rest%rowFields), rest / rowFields
}

// FocusNext moves focus forward, wrapping.
func (f *FormModel) FocusNext() {
	f.focus = (f.focus + 1) % f.numFields()
	f.applyFocus()
}

// FocusPrev moves focus backward, wrapping.
func (f *FormModel) FocusPrev() {
	f.focus = (f.focus - 1 + f.numFields()) % f.numFields()
	f.applyFocus()
}

// applyFocus focuses the text input under the cursor and blurs the
// rest. Day fields have no input; everything is blurred there.
func (f *FormModel) applyFocus() {
	f.title.Blur()
	f.instructor.Blur()
	f.room.Blur()
	f.color.Blur()
	for i := range f.rows {
		f.rows[i].start.Blur()
		f.rows[i].end.Blur()
	}

	kind, row := f.fieldAt(f.focus)
	switch kind {
	case fieldTitle:
		f.title.Focus()
	case fieldInstructor:
		f.instructor.Focus()
	case fieldRoom:
		f.room.Focus()
	case fieldColor:
		f.color.Focus()
	case fieldStart:
		f.rows[row].start.Focus()
	case fieldEnd:
		f.rows[row].end.Focus()
	}
}

// Update forwards a message to the focused text input.
func (f *FormModel) Update(msg tea.Msg) tea.Cmd {
	kind, row := f.fieldAt(f.focus)
	var cmd tea.Cmd
	switch kind {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldInstructor:
		f.instructor, cmd = f.instructor.Update(msg)
	case fieldRoom:
		f.room, cmd = f.room.Update(msg)
	case fieldColor:
		f.color, cmd = f.color.Update(msg)
	case fieldStart:
		f.rows[row].start, cmd = f.rows[row].start.Update(msg)
	case fieldEnd:
		f.rows[row].end, cmd = f.rows[row].end.Update(msg)
	}
	return cmd
}

// AddRow prepends a new time slot, mirroring the buffer's front
// insertion. Focus stays on the same logical field.
func (f *FormModel) AddRow() {
	f.syncRows()
	f.buffer.AddRow()
	f.rows = append([]rowInputs{newRowInputs("07:00", "07:00")}, f.rows...)
	if f.focus >= scalarFields {
		f.focus += rowFields
	}
	f.applyFocus()
}

// RemoveFocusedRow deletes the row under focus. Removing the last
// remaining row is a no-op: a course keeps at least one slot.
func (f *FormModel) RemoveFocusedRow() {
	_, row := f.fieldAt(f.focus)
	if row < 0 || len(f.rows) <= 1 {
		return
	}
	f.syncRows()
	f.buffer.RemoveRow(row)
	f.rows = append(f.rows[:row], f.rows[row+1:]...)
	if f.focus >= f.numFields() {
		f.focus = f.numFields() - 1
	}
	f.applyFocus()
}

// ToggleAmPm flips the period of the focused time field.
func (f *FormModel) ToggleAmPm() {
	kind, row := f.fieldAt(f.focus)
	switch kind {
	case fieldStart:
		f.rows[row].start.SetValue(timefmt.ToggleAmPm(f.rows[row].start.Value()))
	case fieldEnd:
		f.rows[row].end.SetValue(timefmt.ToggleAmPm(f.rows[row].end.Value()))
	}
}

// CycleDay steps the focused row's day through the weekday list.
func (f *FormModel) CycleDay(delta int) {
	kind, row := f.fieldAt(f.focus)
	if kind != fieldDay {
		return
	}
	current := f.buffer.Rows[row].Day
	idx := -1
	for i, d := range schedule.Days {
		if d == current {
			idx = i
			break
		}
	}
	n := len(schedule.Days)
	if idx == -1 {
		// Unset day: step onto the list from either end.
		if delta >= 0 {
			idx = 0
		} else {
			idx = n - 1
		}
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	f.buffer.SetRow(row, editor.FieldDay, schedule.Days[idx])
}

// syncRows copies the time input values into the buffer rows.
func (f *FormModel) syncRows() {
	for i := range f.rows {
		f.buffer.SetRow(i, editor.FieldStartTime, f.rows[i].start.Value())
		f.buffer.SetRow(i, editor.FieldEndTime, f.rows[i].end.Value())
	}
}

// syncBuffer copies every input value into the buffer.
func (f *FormModel) syncBuffer() {
	f.buffer.Title = f.title.Value()
	f.buffer.Instructor = f.instructor.Value()
	f.buffer.Room = f.room.Value()
	f.buffer.Color = f.color.Value()
	f.syncRows()
}

// Submit syncs the inputs into the buffer and materializes the
// entries. On validation failure the error is kept for display and no
// entries are returned.
func (f *FormModel) Submit() ([]schedule.Entry, error) {
	f.syncBuffer()
	entries, err := f.buffer.Submit()
	if err != nil {
		f.errMsg = err.Error()
		return nil, err
	}
	f.errMsg = ""
	return entries, nil
}

// Reconcile merges submitted entries into the current sequence using
// the buffer's create/edit semantics.
func (f *FormModel) Reconcile(current, submitted []schedule.Entry) []schedule.Entry {
	return f.buffer.Reconcile(current, submitted)
}

// Editing reports whether the form edits an existing course.
func (f *FormModel) Editing() bool {
	return f.buffer.Editing()
}
