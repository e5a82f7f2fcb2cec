package domain

import (
	"fmt"
	"time"
)

// Unit is the calendar unit a recurrence interval is counted in.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
)

// IsValid checks if the unit is one of the known calendar units.
func (u Unit) IsValid() bool {
	switch u {
	case UnitDays, UnitWeeks, UnitMonths:
		return true
	}
	return false
}

// EndCondition determines when a recurrence stops generating occurrences.
// Exactly one variant applies to a rule; the payload only exists on the
// variant that needs it, so an end date and an occurrence count can never
// be set at the same time.
type EndCondition interface {
	endCondition()
	String() string
}

// EndNever means the recurrence repeats indefinitely.
type EndNever struct{}

func (EndNever) endCondition()  {}
func (EndNever) String() string { return "never" }

// EndOnDate stops the recurrence after the given calendar date.
type EndOnDate struct {
	Date time.Time
}

func (EndOnDate) endCondition() {}
func (e EndOnDate) String() string {
	return fmt.Sprintf("on %s", e.Date.Format("2006-01-02"))
}

// EndAfterOccurrences stops the recurrence after a fixed number of occurrences.
type EndAfterOccurrences struct {
	Count int
}

func (EndAfterOccurrences) endCondition() {}
func (e EndAfterOccurrences) String() string {
	return fmt.Sprintf("after %d occurrences", e.Count)
}

// RecurrenceRule is an immutable description of how a task repeats.
// It is assembled once by the recurrence builder and never mutated.
type RecurrenceRule struct {
	Frequency    int // repeat every Frequency Units; always >= 1
	Unit         Unit
	StartDate    time.Time
	End          EndCondition
	SkipWeekends bool
}

// EndsOn returns the end date and true if the rule ends on a fixed date.
func (r RecurrenceRule) EndsOn() (time.Time, bool) {
	if end, ok := r.End.(EndOnDate); ok {
		return end.Date, true
	}
	return time.Time{}, false
}

// EndsAfter returns the occurrence count and true if the rule ends after a
// fixed number of occurrences.
func (r RecurrenceRule) EndsAfter() (int, bool) {
	if end, ok := r.End.(EndAfterOccurrences); ok {
		return end.Count, true
	}
	return 0, false
}

// IsValid checks if the rule has valid data.
func (r RecurrenceRule) IsValid() bool {
	if r.Frequency < 1 || !r.Unit.IsValid() || r.StartDate.IsZero() || r.End == nil {
		return false
	}
	if endDate, ok := r.EndsOn(); ok && endDate.Before(r.StartDate) {
		return false
	}
	if count, ok := r.EndsAfter(); ok && count < 1 {
		return false
	}
	return true
}

// String returns a human-readable description of the rule.
func (r RecurrenceRule) String() string {
	return fmt.Sprintf("every %d %s from %s, ends %s",
		r.Frequency, r.Unit, r.StartDate.Format("2006-01-02"), r.End)
}
