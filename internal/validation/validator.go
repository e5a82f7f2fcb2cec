package validation

import (
	"regexp"
	"strings"
	"time"

	"taskquest/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	titleRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		// Allow alphanumeric characters, spaces, hyphens, underscores, and
		// common punctuation; reject newlines, tabs and control characters.
		titleRegex: regexp.MustCompile(`^[a-zA-Z0-9 \-_.,!?()]+$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitle checks if a task title contains only allowed characters
func (v *Validator) IsValidTitle(title string) bool {
	return v.titleRegex.MatchString(title)
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsDateWithin checks if a date falls within [from, to] at day granularity
func (v *Validator) IsDateWithin(date, from, to time.Time) bool {
	d := domain.DateOf(date)
	return !d.Before(domain.DateOf(from)) && !d.After(domain.DateOf(to))
}

// IsDateOnOrAfter checks if a date is not before another date at day granularity
func (v *Validator) IsDateOnOrAfter(date, other time.Time) bool {
	return !domain.DateOf(date).Before(domain.DateOf(other))
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
