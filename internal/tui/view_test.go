package tui

import (
	"strings"
	"testing"
)

func TestRenderCardTimesCarryPeriodOnce(t *testing.T) {
	m := testModel(t, testEntry("CS101", "Monday", "09:00", "13:30"))
	m.width = 280
	m.height = 40

	out := m.renderGrid()

	for _, doubled := range []string{"AM AM", "PM PM", "AM PM", "PM AM"} {
		if strings.Contains(out, doubled) {
			t.Fatalf("card shows a doubled period %q in:\n%s", doubled, out)
		}
	}
	if !strings.Contains(out, "9:00 AM - 1:30 PM") {
		t.Fatalf("card missing 12-hour time range in:\n%s", out)
	}
}

func TestViewShowsEmptyDayPlaceholder(t *testing.T) {
	m := testModel(t, testEntry("CS101", "Monday", "09:00", "10:00"))
	m.width = 280
	m.height = 40

	out := m.renderGrid()

	if !strings.Contains(out, "no classes") {
		t.Fatal("empty days must render the placeholder")
	}
	if !strings.Contains(out, "CS101") {
		t.Fatal("scheduled class missing from the grid")
	}
}
