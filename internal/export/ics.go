package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"classdeck/internal/schedule"
	"classdeck/internal/timefmt"
)

// byDay maps weekday names to their iCalendar BYDAY codes.
var byDay = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
	"Saturday":  "SA",
	"Sunday":    "SU",
}

var icalWeekday = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// WriteICS serializes the entries as an iCalendar feed with one
// weekly-recurring VEVENT per entry. The first occurrence of each
// event lands on the entry's weekday in the week of `anchor`
// (typically time.Now), in local time; the RRULE carries the weekday
// so consuming calendars repeat it indefinitely.
func WriteICS(w io.Writer, entries []schedule.Entry, anchor time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for i, e := range entries {
		day, ok := byDay[e.Day]
		if !ok {
			// Same policy as the layout: unknown days are dropped.
			continue
		}

		start, end, err := occurrenceTimes(e, anchor)
		if err != nil {
			return fmt.Errorf("entry %d (%s): %w", i+1, e.Title, err)
		}

		event := cal.AddEvent(fmt.Sprintf("classdeck-%d@classdeck.local", i))
		event.SetDtStampTime(anchor)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(e.Title)
		if e.Room != "" {
			event.SetLocation(e.Room)
		}
		if e.Instructor != "" {
			event.SetDescription("Instructor: " + e.Instructor)
		}
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + day)
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serializing calendar: %w", err)
	}
	return nil
}

// occurrenceTimes computes the first occurrence's start and end for an
// entry: the entry's weekday within the week beginning on the Monday
// of anchor's week.
func occurrenceTimes(e schedule.Entry, anchor time.Time) (time.Time, time.Time, error) {
	target := icalWeekday[e.Day]

	// Walk back to Monday, then forward to the target weekday.
	date := anchor
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, -1)
	}
	for date.Weekday() != target {
		date = date.AddDate(0, 0, 1)
	}

	start, err := atTime(date, e.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start time: %w", err)
	}
	end, err := atTime(date, e.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end time: %w", err)
	}
	return start, end, nil
}

// atTime combines a date with a "HH:MM" value in the date's location.
func atTime(date time.Time, hhmm string) (time.Time, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return time.Time{}, fmt.Errorf("malformed time %q", hhmm)
	}
	hour := timefmt.StartHour(hhmm)
	minute := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("time %q out of range", hhmm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
