package export

import (
	"strings"
	"testing"
	"time"

	"classdeck/internal/schedule"
)

// anchor is a Wednesday; the Monday of its week is 2025-01-06.
var anchor = time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)

func TestWriteICS(t *testing.T) {
	entries := []schedule.Entry{
		{Title: "Algorithms", Instructor: "Dijkstra", Room: "A1", Day: "Tuesday", StartTime: "10:00", EndTime: "11:30"},
		{Title: "Lab", Day: "Friday", StartTime: "13:00", EndTime: "16:00"},
	}

	var b strings.Builder
	if err := WriteICS(&b, entries, anchor); err != nil {
		t.Fatalf("WriteICS() error: %v", err)
	}
	out := b.String()

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("calendar holds %d events, want 2", got)
	}
	for _, want := range []string{
		"SUMMARY:Algorithms",
		"LOCATION:A1",
		"DESCRIPTION:Instructor: Dijkstra",
		"RRULE:FREQ=WEEKLY;BYDAY=TU",
		"RRULE:FREQ=WEEKLY;BYDAY=FR",
		// Tuesday of the anchor week.
		"20250107T100000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar missing %q:\n%s", want, out)
		}
	}
}

func TestWriteICSSkipsUnknownDays(t *testing.T) {
	entries := []schedule.Entry{
		{Title: "Ghost", Day: "Funday", StartTime: "10:00", EndTime: "11:00"},
	}

	var b strings.Builder
	if err := WriteICS(&b, entries, anchor); err != nil {
		t.Fatalf("WriteICS() error: %v", err)
	}

	if strings.Contains(b.String(), "BEGIN:VEVENT") {
		t.Error("unknown-day entry produced an event")
	}
}

func TestWriteICSRejectsMalformedTimes(t *testing.T) {
	entries := []schedule.Entry{
		{Title: "Broken", Day: "Monday", StartTime: "25:99", EndTime: "26:00"},
	}

	var b strings.Builder
	if err := WriteICS(&b, entries, anchor); err == nil {
		t.Error("WriteICS() accepted an out-of-range time")
	}
}

func TestOccurrenceLandsInAnchorWeek(t *testing.T) {
	e := schedule.Entry{Title: "X", Day: "Monday", StartTime: "08:00", EndTime: "09:00"}

	start, end, err := occurrenceTimes(e, anchor)
	if err != nil {
		t.Fatalf("occurrenceTimes() error: %v", err)
	}

	if start.Weekday() != time.Monday {
		t.Errorf("start weekday = %v, want Monday", start.Weekday())
	}
	if start.Day() != 6 || start.Month() != time.January {
		t.Errorf("start date = %v, want 2025-01-06", start)
	}
	if end.Sub(start) != time.Hour {
		t.Errorf("duration = %v, want 1h", end.Sub(start))
	}
}
