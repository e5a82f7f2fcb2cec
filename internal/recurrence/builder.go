package recurrence

import (
	"strconv"
	"strings"
	"time"

	"taskquest/internal/domain"
	"taskquest/internal/errors"
	"taskquest/internal/validation"
)

const (
	// DefaultFrequency is used when the frequency field cannot be parsed.
	DefaultFrequency = 1
	// DefaultOccurrences is used when the occurrences field cannot be parsed.
	DefaultOccurrences = 5
)

// Input carries the raw, possibly-invalid field values collected for a
// recurrence rule. Text fields arrive exactly as the user typed them.
type Input struct {
	FrequencyText   string
	Unit            string
	StartDate       time.Time
	EndCondition    string
	EndDate         *time.Time
	OccurrencesText string
	SkipWeekends    bool
}

// Builder turns raw recurrence input into a validated, immutable
// domain.RecurrenceRule, or rejects it with an invalid-rule error.
type Builder struct {
	ruleValidator *validation.RuleValidator
}

// NewBuilder creates a new rule builder with the default validation horizon
func NewBuilder() *Builder {
	return &Builder{
		ruleValidator: validation.NewRuleValidator(),
	}
}

// NewBuilderWithValidator creates a new rule builder with a custom validator
func NewBuilderWithValidator(rv *validation.RuleValidator) *Builder {
	return &Builder{
		ruleValidator: rv,
	}
}

// Build assembles a RecurrenceRule from raw input. It is a pure function of
// its arguments; the caller supplies now so results are deterministic.
//
// Numeric fields never fail: an unparseable frequency falls back to 1 and an
// unparseable occurrence count to 5. An unrecognized unit falls back to days.
// An unrecognized end condition is the one parse failure that is an error.
func (b *Builder) Build(input Input, now time.Time) (domain.RecurrenceRule, error) {
	end, err := b.buildEndCondition(input)
	if err != nil {
		return domain.RecurrenceRule{}, err
	}

	rule := domain.RecurrenceRule{
		Frequency:    parseCount(input.FrequencyText, DefaultFrequency),
		Unit:         ParseUnit(input.Unit),
		StartDate:    domain.DateOf(input.StartDate),
		End:          end,
		SkipWeekends: input.SkipWeekends,
	}

	if err := b.ruleValidator.ValidateRule(rule, now); err != nil {
		return domain.RecurrenceRule{}, errors.NewInvalidRuleError(err.Error(), err)
	}

	return rule, nil
}

// buildEndCondition resolves the end-condition variant for the rule. The
// end-date and occurrence-count fields are only consulted for the variant
// that carries them, so stale values from the other fields can never leak
// into the result.
func (b *Builder) buildEndCondition(input Input) (domain.EndCondition, error) {
	switch normalizeToken(input.EndCondition) {
	case "never":
		return domain.EndNever{}, nil
	case "on_date":
		if input.EndDate == nil {
			return nil, errors.NewInvalidRuleError("an end date is required when the rule ends on a date", nil)
		}
		return domain.EndOnDate{Date: domain.DateOf(*input.EndDate)}, nil
	case "after_occurrences":
		return domain.EndAfterOccurrences{Count: parseCount(input.OccurrencesText, DefaultOccurrences)}, nil
	default:
		return nil, errors.NewInvalidRuleError("unrecognized end condition", nil).
			WithContext("end_condition", input.EndCondition)
	}
}

// ParseUnit parses a unit token, falling back to days for anything it does
// not recognize.
func ParseUnit(s string) domain.Unit {
	switch normalizeToken(s) {
	case "weeks", "week", "w":
		return domain.UnitWeeks
	case "months", "month", "mo":
		return domain.UnitMonths
	default:
		return domain.UnitDays
	}
}

// parseCount parses a positive integer from user text, falling back to the
// given default when the text does not parse or is not positive.
func parseCount(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
