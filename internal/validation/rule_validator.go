package validation

import (
	"time"

	"taskquest/internal/domain"
)

// DefaultHorizonYears is how far into the future recurrence dates may lie.
const DefaultHorizonYears = 2

// RuleValidator provides validation for recurrence rule dates.
// The date windows mirror what the date pickers enforce at entry time:
// the start date must lie within [today, today + horizon] and the end date,
// when present, within [startDate, today + horizon]. The validator re-checks
// them so the rule builder never has to trust its caller.
type RuleValidator struct {
	validator    *Validator
	horizonYears int
}

// NewRuleValidator creates a new rule validator with the default horizon
func NewRuleValidator() *RuleValidator {
	return &RuleValidator{
		validator:    NewValidator(),
		horizonYears: DefaultHorizonYears,
	}
}

// NewRuleValidatorWithHorizon creates a new rule validator with a custom horizon
func NewRuleValidatorWithHorizon(years int) *RuleValidator {
	return &RuleValidator{
		validator:    NewValidator(),
		horizonYears: years,
	}
}

// ValidateStartDate validates that the start date lies within the allowed window
func (rv *RuleValidator) ValidateStartDate(startDate, now time.Time) error {
	validationError := NewValidationError()

	today := domain.DateOf(now)
	horizon := today.AddDate(rv.horizonYears, 0, 0)

	if startDate.IsZero() {
		validationError.AddRequiredError("start_date")
		return validationError
	}

	if !rv.validator.IsDateWithin(startDate, today, horizon) {
		validationError.AddInvalidRangeError("start_date", startDate.Format("2006-01-02"),
			"must be between today and two years from today")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateEndDate validates that the end date lies within the allowed window
func (rv *RuleValidator) ValidateEndDate(endDate, startDate, now time.Time) error {
	validationError := NewValidationError()

	horizon := domain.DateOf(now).AddDate(rv.horizonYears, 0, 0)

	if !rv.validator.IsDateOnOrAfter(endDate, startDate) {
		validationError.AddInvalidRangeError("end_date", endDate.Format("2006-01-02"),
			"must not be before the start date")
	} else if !rv.validator.IsDateWithin(endDate, startDate, horizon) {
		validationError.AddInvalidRangeError("end_date", endDate.Format("2006-01-02"),
			"must be within two years from today")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateRule validates an assembled recurrence rule
func (rv *RuleValidator) ValidateRule(rule domain.RecurrenceRule, now time.Time) error {
	validationError := NewValidationError()

	if rule.Frequency < 1 {
		validationError.AddInvalidValueError("frequency", rule.Frequency, "must be at least 1")
	}
	if !rule.Unit.IsValid() {
		validationError.AddInvalidValueError("unit", string(rule.Unit), "must be days, weeks or months")
	}

	if err := rv.ValidateStartDate(rule.StartDate, now); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	if endDate, ok := rule.EndsOn(); ok {
		if err := rv.ValidateEndDate(endDate, rule.StartDate, now); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, ve.Errors...)
			}
		}
	}

	if count, ok := rule.EndsAfter(); ok && count < 1 {
		validationError.AddInvalidValueError("occurrence_count", count, "must be at least 1")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
