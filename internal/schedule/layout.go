package schedule

import (
	"slices"

	"classdeck/internal/timefmt"
)

// Placed is one entry positioned in the weekly layout. SourceIndex is
// the entry's position in the flat store at the time the layout was
// built; edit and delete actions issued from the rendered grid address
// the store through it.
type Placed struct {
	Entry       Entry
	SourceIndex int
}

// DayColumn is one weekday's time-ordered slice of the layout. Items
// is empty (never nil after BuildLayout) for days with no classes.
type DayColumn struct {
	Day   string
	Items []Placed
}

// BuildLayout projects the flat entry sequence into one column per
// weekday, each sorted by start hour. The sort key is the hour
// component only; entries starting within the same hour keep store
// order. Entries with a day outside the fixed enumeration fall into
// no column and are dropped without error.
func BuildLayout(entries []Entry) []DayColumn {
	columns := make([]DayColumn, len(Days))
	index := make(map[string]int, len(Days))
	for i, day := range Days {
		columns[i] = DayColumn{Day: day, Items: []Placed{}}
		index[day] = i
	}

	for i, e := range entries {
		col, ok := index[e.Day]
		if !ok {
			continue
		}
		columns[col].Items = append(columns[col].Items, Placed{Entry: e, SourceIndex: i})
	}

	for i := range columns {
		slices.SortStableFunc(columns[i].Items, func(a, b Placed) int {
			return timefmt.StartHour(a.Entry.StartTime) - timefmt.StartHour(b.Entry.StartTime)
		})
	}

	return columns
}

// ColumnFor returns the column for the given weekday name.
func ColumnFor(layout []DayColumn, day string) (DayColumn, bool) {
	for _, c := range layout {
		if c.Day == day {
			return c, true
		}
	}
	return DayColumn{}, false
}
