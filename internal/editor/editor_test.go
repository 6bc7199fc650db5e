package editor

import (
	"errors"
	"testing"

	"classdeck/internal/schedule"
)

func TestNewCreateDefaults(t *testing.T) {
	b := NewCreate()

	if b.Title != "" || b.Instructor != "" || b.Room != "" {
		t.Error("new buffer scalars not empty")
	}
	if b.Color != schedule.DefaultColor {
		t.Errorf("Color = %q, want %q", b.Color, schedule.DefaultColor)
	}
	if len(b.Rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(b.Rows))
	}
	row := b.Rows[0]
	if row.Day != "" || row.StartTime != "07:00" || row.EndTime != "07:00" {
		t.Errorf("default row = %+v, want empty day and 07:00 times", row)
	}
	if b.Editing() {
		t.Error("Editing() = true for a create buffer")
	}
}

func TestNewEditSeedsFromGroup(t *testing.T) {
	group := []schedule.Entry{
		{Title: "CS101", Instructor: "Knuth", Room: "B2", Color: "#112233", Day: "Monday", StartTime: "09:00", EndTime: "10:30"},
		{Title: "CS101", Instructor: "Knuth", Room: "B2", Color: "#112233", Day: "Wednesday", StartTime: "09:00", EndTime: "10:30"},
	}

	b, err := NewEdit(group)
	if err != nil {
		t.Fatalf("NewEdit() error: %v", err)
	}

	if b.Title != "CS101" || b.Instructor != "Knuth" || b.Room != "B2" || b.Color != "#112233" {
		t.Errorf("scalars = %q/%q/%q/%q, want CS101/Knuth/B2/#112233",
			b.Title, b.Instructor, b.Room, b.Color)
	}
	if len(b.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(b.Rows))
	}
	if b.Rows[0].Day != "Monday" || b.Rows[1].Day != "Wednesday" {
		t.Errorf("row days = %q, %q; want Monday, Wednesday", b.Rows[0].Day, b.Rows[1].Day)
	}
	if !b.Editing() || b.OriginalTitle() != "CS101" {
		t.Errorf("Editing()=%v OriginalTitle()=%q, want true/CS101", b.Editing(), b.OriginalTitle())
	}
}

func TestNewEditEmptyGroup(t *testing.T) {
	if _, err := NewEdit(nil); err == nil {
		t.Error("NewEdit(nil) error = nil, want error")
	}
}

func TestAddRowPrepends(t *testing.T) {
	b := NewCreate()
	b.SetRow(0, FieldDay, "Friday")

	b.AddRow()

	if len(b.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(b.Rows))
	}
	if b.Rows[0].Day != "" {
		t.Errorf("Rows[0].Day = %q, want empty (new row goes first)", b.Rows[0].Day)
	}
	if b.Rows[1].Day != "Friday" {
		t.Errorf("Rows[1].Day = %q, want Friday", b.Rows[1].Day)
	}
}

func TestRemoveRowGuardsLastRow(t *testing.T) {
	b := NewCreate()

	b.RemoveRow(0)

	if len(b.Rows) != 1 {
		t.Errorf("Rows = %d after removing the only row, want 1", len(b.Rows))
	}
}

func TestRemoveRow(t *testing.T) {
	b := NewCreate()
	b.SetRow(0, FieldDay, "Monday")
	b.AddRow()
	b.SetRow(0, FieldDay, "Tuesday")

	b.RemoveRow(0)

	if len(b.Rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(b.Rows))
	}
	if b.Rows[0].Day != "Monday" {
		t.Errorf("surviving row day = %q, want Monday", b.Rows[0].Day)
	}
}

func TestSubmitMaterializesAllRows(t *testing.T) {
	b := NewCreate()
	b.Title = "Algorithms"
	b.Instructor = "Dijkstra"
	b.Room = "A1"
	b.SetRow(0, FieldDay, "Tuesday")
	b.SetRow(0, FieldStartTime, "10:00")
	b.SetRow(0, FieldEndTime, "11:30")
	b.AddRow()
	b.SetRow(0, FieldDay, "Thursday")
	b.SetRow(0, FieldStartTime, "10:00")
	b.SetRow(0, FieldEndTime, "11:30")

	entries, err := b.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	if len(entries) != len(b.Rows) {
		t.Fatalf("Submit() yielded %d entries, want %d", len(entries), len(b.Rows))
	}
	for i, e := range entries {
		if e.Title != "Algorithms" || e.Instructor != "Dijkstra" || e.Room != "A1" || e.Color != schedule.DefaultColor {
			t.Errorf("entry %d scalars = %+v, want buffer scalars verbatim", i, e)
		}
	}
	if entries[0].Day != "Thursday" || entries[1].Day != "Tuesday" {
		t.Errorf("entry days = %q, %q; want Thursday, Tuesday (row order)",
			entries[0].Day, entries[1].Day)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Buffer)
		wantErr error
	}{
		{
			name:    "empty title",
			prepare: func(b *Buffer) { b.SetRow(0, FieldDay, "Monday") },
			wantErr: schedule.ErrEmptyTitle,
		},
		{
			name: "row missing day",
			prepare: func(b *Buffer) {
				b.Title = "CS101"
			},
			wantErr: ErrRowIncomplete,
		},
		{
			name: "row missing start time",
			prepare: func(b *Buffer) {
				b.Title = "CS101"
				b.SetRow(0, FieldDay, "Monday")
				b.SetRow(0, FieldStartTime, "")
			},
			wantErr: ErrRowIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewCreate()
			tt.prepare(b)

			entries, err := b.Submit()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
			if entries != nil {
				t.Error("Submit() returned entries despite validation failure")
			}
		})
	}
}

func TestReconcileCreateAppends(t *testing.T) {
	current := []schedule.Entry{{Title: "CS101", Day: "Monday", StartTime: "09:00", EndTime: "10:00"}}
	b := NewCreate()
	b.Title = "CS102"
	submitted := []schedule.Entry{{Title: "CS102", Day: "Friday", StartTime: "13:00", EndTime: "14:00"}}

	next := b.Reconcile(current, submitted)

	if len(next) != 2 {
		t.Fatalf("len = %d, want 2", len(next))
	}
	if next[0].Title != "CS101" || next[1].Title != "CS102" {
		t.Errorf("order = %q, %q; want CS101, CS102", next[0].Title, next[1].Title)
	}
}

func TestReconcileEditRename(t *testing.T) {
	current := []schedule.Entry{
		{Title: "CS101", Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		{Title: "CS102", Day: "Tuesday", StartTime: "10:00", EndTime: "11:00"},
		{Title: "CS101", Day: "Wednesday", StartTime: "09:00", EndTime: "10:00"},
	}
	b, err := NewEdit(schedule.GroupByTitle(current, "CS101"))
	if err != nil {
		t.Fatal(err)
	}
	b.Title = "CS199"

	submitted, err := b.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	next := b.Reconcile(current, submitted)

	var old, renamed int
	for _, e := range next {
		switch e.Title {
		case "CS101":
			old++
		case "CS199":
			renamed++
		}
	}
	if old != 0 {
		t.Errorf("%d entries left under the old title, want 0", old)
	}
	if renamed != 2 {
		t.Errorf("%d entries under the new title, want 2", renamed)
	}
	if len(next) != 3 {
		t.Errorf("len = %d, want 3 (CS102 untouched)", len(next))
	}
}
