// Package timefmt provides pure helpers for "HH:MM" wall-clock strings.
package timefmt

import (
	"fmt"
	"strings"
)

// To12Hour converts a 24-hour "HH:MM" value to its 12-hour display
// form, e.g. "13:30" -> "1:30 PM". Hour 0 displays as 12. Minutes are
// passed through unchanged.
func To12Hour(t string) string {
	hour, minutes, ok := split(t)
	if !ok {
		return t
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, minutes, period)
}

// AmPm returns "PM" when the hour component is 12 or later, "AM"
// otherwise. Empty or malformed input defaults to "AM".
func AmPm(t string) string {
	hour, _, ok := split(t)
	if !ok {
		return "AM"
	}
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}

// ToggleAmPm flips the 12-hour period of a "HH:MM" value by adding 12
// to a morning hour or subtracting 12 from an afternoon hour. The
// boundary hours follow the same arithmetic: "00:30" becomes "12:30"
// and "12:30" becomes "00:30".
func ToggleAmPm(t string) string {
	hour, minutes, ok := split(t)
	if !ok {
		return t
	}
	if hour < 12 {
		hour += 12
	} else {
		hour -= 12
	}
	return fmt.Sprintf("%02d:%s", hour, minutes)
}

// StartHour returns the integer value of the "HH" component only.
// Minutes are deliberately ignored; this is the layout sort key.
// Returns 0 for malformed input.
func StartHour(t string) int {
	hour, _, ok := split(t)
	if !ok {
		return 0
	}
	return hour
}

// split parses "HH:MM" into the hour value and the raw minute string.
// The minute component is not re-validated.
func split(t string) (hour int, minutes string, ok bool) {
	h, m, found := strings.Cut(t, ":")
	if !found || len(h) == 0 {
		return 0, "", false
	}
	for _, c := range h {
		if c < '0' || c > '9' {
			return 0, "", false
		}
		hour = hour*10 + int(c-'0')
	}
	return hour, m, true
}
