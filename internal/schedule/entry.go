// Package schedule defines the core domain types for classdeck.
package schedule

import "errors"

// Validation errors.
var (
	ErrEmptyTitle = errors.New("course title cannot be empty")
	ErrEmptyDay   = errors.New("day cannot be empty")
	ErrEmptyTime  = errors.New("start and end times cannot be empty")
	ErrUnknownDay = errors.New("day must be a weekday name")
)

// DefaultColor is the background color assigned to new entries.
const DefaultColor = "#000000"

// Days is the fixed weekday enumeration, in grid order. Entries whose
// Day is outside this set never appear in the layout.
var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ValidDay reports whether day is one of the fixed weekday names.
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// Entry is one scheduled occurrence of a course on one day. Entries
// have no identifier of their own; a position in the Store sequence is
// the only way to address one.
type Entry struct {
	Title      string `toml:"title"`
	Instructor string `toml:"instructor,omitempty"`
	Room       string `toml:"room,omitempty"`
	Color      string `toml:"color,omitempty"`
	Day        string `toml:"day"`
	StartTime  string `toml:"start_time"`
	EndTime    string `toml:"end_time"`
}

// Validate checks the fields required for an entry to be stored.
// Instructor and Room are optional and display as "TBA" when empty.
func (e Entry) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if e.Day == "" {
		return ErrEmptyDay
	}
	if e.StartTime == "" || e.EndTime == "" {
		return ErrEmptyTime
	}
	if !ValidDay(e.Day) {
		return ErrUnknownDay
	}
	return nil
}

// DisplayInstructor returns the instructor name or "TBA".
func (e Entry) DisplayInstructor() string {
	if e.Instructor == "" {
		return "TBA"
	}
	return e.Instructor
}

// DisplayRoom returns the room or "TBA".
func (e Entry) DisplayRoom() string {
	if e.Room == "" {
		return "TBA"
	}
	return e.Room
}

// DisplayColor returns the background color, falling back to the
// default when unset.
func (e Entry) DisplayColor() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}
