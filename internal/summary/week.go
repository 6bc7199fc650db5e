// Package summary provides shared week summary utilities.
package summary

import (
	"fmt"
	"strings"

	"classdeck/internal/schedule"
	"classdeck/internal/timefmt"
)

// WeekSummary holds aggregated data for the whole schedule.
type WeekSummary struct {
	Layout        []schedule.DayColumn
	Stats         WeekStats
	CourseMinutes map[string]int // minutes of class time per course title
	CourseTitles  []string       // CourseMinutes keys, first-seen order
}

// WeekStats holds schedule-wide totals.
type WeekStats struct {
	TotalClasses int
	TotalMinutes int
	BusiestDay   string // day with the most class minutes, "" when empty
	DayMinutes   map[string]int
}

// TotalHours returns the total class time as fractional hours.
func (s WeekStats) TotalHours() float64 {
	return float64(s.TotalMinutes) / 60.0
}

// SummarizeWeek builds summary data from the flat entry sequence.
func SummarizeWeek(entries []schedule.Entry) *WeekSummary {
	layout := schedule.BuildLayout(entries)

	stats := WeekStats{DayMinutes: make(map[string]int, len(layout))}
	courseMinutes := make(map[string]int)
	var titles []string

	for _, col := range layout {
		for _, p := range col.Items {
			minutes := durationMinutes(p.Entry.StartTime, p.Entry.EndTime)
			stats.TotalClasses++
			stats.TotalMinutes += minutes
			stats.DayMinutes[col.Day] += minutes
			if _, seen := courseMinutes[p.Entry.Title]; !seen {
				titles = append(titles, p.Entry.Title)
			}
			courseMinutes[p.Entry.Title] += minutes
		}
	}

	best := 0
	for _, day := range schedule.Days {
		if m := stats.DayMinutes[day]; m > best {
			best = m
			stats.BusiestDay = day
		}
	}

	return &WeekSummary{
		Layout:        layout,
		Stats:         stats,
		CourseMinutes: courseMinutes,
		CourseTitles:  titles,
	}
}

// Text renders the summary as plain text: one block per day with
// 12-hour times, then the totals. This is what the clipboard copy and
// the show command print.
func (w *WeekSummary) Text() string {
	var b strings.Builder

	for _, col := range w.Layout {
		b.WriteString(col.Day)
		b.WriteString("\n")
		if len(col.Items) == 0 {
			b.WriteString("  no classes\n")
			continue
		}
		for _, p := range col.Items {
			e := p.Entry
			fmt.Fprintf(&b, "  %s - %s  %s (%s, %s)\n",
				timefmt.To12Hour(e.StartTime), timefmt.To12Hour(e.EndTime),
				e.Title, e.DisplayInstructor(), e.DisplayRoom())
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Classes: %d, %.1f hours/week\n", w.Stats.TotalClasses, w.Stats.TotalHours())
	if w.Stats.BusiestDay != "" {
		fmt.Fprintf(&b, "Busiest day: %s\n", w.Stats.BusiestDay)
	}
	for _, title := range w.CourseTitles {
		fmt.Fprintf(&b, "  %s: %.1fh\n", title, float64(w.CourseMinutes[title])/60.0)
	}

	return b.String()
}

// durationMinutes returns the minutes between two "HH:MM" values, or 0
// when the range is malformed or inverted.
func durationMinutes(start, end string) int {
	s := toMinutes(start)
	e := toMinutes(end)
	if e <= s {
		return 0
	}
	return e - s
}

func toMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	return timefmt.StartHour(t)*60 + int(t[3]-'0')*10 + int(t[4]-'0')
}
