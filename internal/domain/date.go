package domain

import (
	"time"
)

// DateOf truncates a timestamp to midnight at the start of its calendar day,
// preserving the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from earlier to
// later, truncating. The result is negative if later precedes earlier.
// Both dates are re-anchored to UTC midnights before subtracting: local
// midnights can be 23 or 25 hours apart across a DST transition, which
// would make consecutive days truncate to zero.
func DaysBetween(later, earlier time.Time) int {
	l := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(e) / (24 * time.Hour))
}

// DayLabel returns the short weekday name for a timestamp, e.g. "Mon".
func DayLabel(t time.Time) string {
	return t.Format("Mon")
}

// IsWeekend reports whether the timestamp falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
