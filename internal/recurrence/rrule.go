package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"taskquest/internal/domain"
)

// maxIterations bounds occurrence expansion so a rule whose occurrences all
// fall on skipped weekends cannot spin forever.
const maxIterations = 1000

// ToRRule converts a domain RecurrenceRule into an RFC 5545 RRULE.
// Weekend skipping is applied at expansion time, not encoded in the rule,
// so a skipped occurrence still consumes the rule's occurrence budget.
func ToRRule(rule domain.RecurrenceRule) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Freq:     frequencyFor(rule.Unit),
		Interval: rule.Frequency,
		Dtstart:  rule.StartDate,
	}

	if endDate, ok := rule.EndsOn(); ok {
		opt.Until = endDate
	}
	if count, ok := rule.EndsAfter(); ok {
		opt.Count = count
	}

	return rrule.NewRRule(opt)
}

// RRuleString returns the RFC 5545 textual form of the rule.
func RRuleString(rule domain.RecurrenceRule) (string, error) {
	r, err := ToRRule(rule)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// NextOccurrences returns up to n occurrences of the rule strictly after the
// given time, in chronological order. Occurrences that land on a Saturday or
// Sunday are dropped when the rule skips weekends.
func NextOccurrences(rule domain.RecurrenceRule, after time.Time, n int) ([]time.Time, error) {
	if n < 1 {
		return nil, fmt.Errorf("occurrence count must be positive, got %d", n)
	}

	r, err := ToRRule(rule)
	if err != nil {
		return nil, err
	}

	iterator := r.Iterator()
	var results []time.Time

	for i := 0; i < maxIterations; i++ {
		next, ok := iterator()
		if !ok {
			break
		}
		if !next.After(after) {
			continue
		}
		if rule.SkipWeekends && domain.IsWeekend(next) {
			continue
		}
		results = append(results, next)
		if len(results) >= n {
			break
		}
	}

	return results, nil
}

// NextOccurrence returns the first occurrence strictly after the given time,
// or nil if the rule has no further occurrences.
func NextOccurrence(rule domain.RecurrenceRule, after time.Time) (*time.Time, error) {
	occurrences, err := NextOccurrences(rule, after, 1)
	if err != nil {
		return nil, err
	}
	if len(occurrences) == 0 {
		return nil, nil
	}
	return &occurrences[0], nil
}

func frequencyFor(unit domain.Unit) rrule.Frequency {
	switch unit {
	case domain.UnitWeeks:
		return rrule.WEEKLY
	case domain.UnitMonths:
		return rrule.MONTHLY
	default:
		return rrule.DAILY
	}
}
