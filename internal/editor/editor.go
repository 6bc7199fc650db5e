// Package editor builds and reconciles the multi-row edit buffer: one
// logical course expands to one schedule entry per time-slot row.
package editor

import (
	"errors"
	"fmt"

	"classdeck/internal/schedule"
)

// Validation errors.
var (
	ErrNoRows        = errors.New("a course needs at least one time slot")
	ErrRowIncomplete = errors.New("day, start time and end time are required")
)

// Row is one in-progress time slot of the buffer.
type Row struct {
	Day       string
	StartTime string
	EndTime   string
}

// defaultRow returns the row a new slot starts from.
func defaultRow() Row {
	return Row{Day: "", StartTime: "07:00", EndTime: "07:00"}
}

// Buffer is the not-yet-committed representation of a course being
// created or edited. The scalar fields apply to every row.
type Buffer struct {
	Title      string
	Instructor string
	Room       string
	Color      string
	Rows       []Row

	// originalTitle is the course title at edit start; empty when
	// creating. Reconcile drops every entry under it on submit.
	originalTitle string
	editing       bool
}

// NewCreate returns a buffer for a new course: empty scalars, the
// default color, and a single default row.
func NewCreate() *Buffer {
	return &Buffer{
		Color: schedule.DefaultColor,
		Rows:  []Row{defaultRow()},
	}
}

// NewEdit returns a buffer seeded from an existing course group. The
// scalar fields come from the group's first entry; each group entry
// contributes one row, in store order.
func NewEdit(group []schedule.Entry) (*Buffer, error) {
	if len(group) == 0 {
		return nil, fmt.Errorf("editing an empty course group")
	}
	first := group[0]
	b := &Buffer{
		Title:         first.Title,
		Instructor:    first.Instructor,
		Room:          first.Room,
		Color:         first.DisplayColor(),
		originalTitle: first.Title,
		editing:       true,
	}
	for _, e := range group {
		b.Rows = append(b.Rows, Row{Day: e.Day, StartTime: e.StartTime, EndTime: e.EndTime})
	}
	return b, nil
}

// Editing reports whether the buffer was seeded from an existing
// course.
func (b *Buffer) Editing() bool {
	return b.editing
}

// OriginalTitle returns the course title at edit start.
func (b *Buffer) OriginalTitle() string {
	return b.originalTitle
}

// AddRow prepends a new default row. New rows go at the front; the
// rendered form numbers rows counting down from len(Rows) to 1, so the
// newest row always shows the highest number.
func (b *Buffer) AddRow() {
	b.Rows = append([]Row{defaultRow()}, b.Rows...)
}

// RemoveRow deletes row i. A course must always keep at least one time
// slot, so removing the last remaining row is a no-op.
func (b *Buffer) RemoveRow(i int) {
	if len(b.Rows) <= 1 || i < 0 || i >= len(b.Rows) {
		return
	}
	b.Rows = append(b.Rows[:i], b.Rows[i+1:]...)
}

// SetRow updates one field of row i.
func (b *Buffer) SetRow(i int, field Field, value string) {
	if i < 0 || i >= len(b.Rows) {
		return
	}
	switch field {
	case FieldDay:
		b.Rows[i].Day = value
	case FieldStartTime:
		b.Rows[i].StartTime = value
	case FieldEndTime:
		b.Rows[i].EndTime = value
	}
}

// Field selects a row field for SetRow.
type Field int

const (
	FieldDay Field = iota
	FieldStartTime
	FieldEndTime
)

// Validate checks that the buffer can be submitted: a title and, for
// every row, a day and both times.
func (b *Buffer) Validate() error {
	if b.Title == "" {
		return schedule.ErrEmptyTitle
	}
	if len(b.Rows) == 0 {
		return ErrNoRows
	}
	for i, r := range b.Rows {
		if r.Day == "" || r.StartTime == "" || r.EndTime == "" {
			return fmt.Errorf("slot %d: %w", len(b.Rows)-i, ErrRowIncomplete)
		}
	}
	return nil
}

// Submit materializes one entry per row, combining the buffer's scalar
// fields with each row's day and times. Fails without side effects
// when validation does.
func (b *Buffer) Submit() ([]schedule.Entry, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	entries := make([]schedule.Entry, 0, len(b.Rows))
	for _, r := range b.Rows {
		entries = append(entries, schedule.Entry{
			Title:      b.Title,
			Instructor: b.Instructor,
			Room:       b.Room,
			Color:      b.Color,
			Day:        r.Day,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
		})
	}
	return entries, nil
}

// Reconcile merges submitted entries into the current sequence. When
// editing, every entry under the original title is dropped first, so a
// rename moves the whole course to the new title and leaves nothing
// behind. When creating, the new entries are simply appended.
func (b *Buffer) Reconcile(current, submitted []schedule.Entry) []schedule.Entry {
	next := make([]schedule.Entry, 0, len(current)+len(submitted))
	if b.editing {
		for _, e := range current {
			if e.Title != b.originalTitle {
				next = append(next, e)
			}
		}
	} else {
		next = append(next, current...)
	}
	return append(next, submitted...)
}
