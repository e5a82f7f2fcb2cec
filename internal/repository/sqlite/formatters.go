package sqlite

import (
	"time"
)

const dateOnlyFormat = "2006-01-02"

// FormatTimeForDB formats a time.Time value as an RFC3339 string for
// database storage. The value is normalized to UTC first so the stored
// strings compare chronologically: mixed offsets would break the
// lexicographic ordering SQL comparisons rely on.
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTimePtrForDB formats a *time.Time value as RFC3339 string, returning nil if the pointer is nil
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatDateForDB formats a calendar date as a date-only string for storage.
// Recurrence rule dates carry no time-of-day component.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateOnlyFormat)
}

// FormatDatePtrForDB formats a *time.Time as a date-only string, returning nil if the pointer is nil
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a date-only string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateOnlyFormat, s)
}
