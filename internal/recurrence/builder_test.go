package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/domain"
	"taskquest/internal/errors"
)

// now is a Monday; all test dates are relative to it
var testNow = time.Date(2026, 8, 17, 10, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder()

	tests := []struct {
		name         string
		input        Input
		expectedRule func(t *testing.T, rule domain.RecurrenceRule)
		expectError  bool
	}{
		{
			name: "should build simple daily rule",
			input: Input{
				FrequencyText: "2",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "never",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				assert.Equal(t, 2, rule.Frequency)
				assert.Equal(t, domain.UnitDays, rule.Unit)
				assert.Equal(t, domain.DateOf(testNow), rule.StartDate)
				assert.Equal(t, domain.EndNever{}, rule.End)
				assert.False(t, rule.SkipWeekends)
			},
		},
		{
			name: "should default frequency to 1 on non-numeric text",
			input: Input{
				FrequencyText: "often",
				Unit:          "weeks",
				StartDate:     testNow,
				EndCondition:  "never",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				assert.Equal(t, 1, rule.Frequency)
			},
		},
		{
			name: "should default frequency to 1 on empty text",
			input: Input{
				FrequencyText: "",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "never",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				assert.Equal(t, 1, rule.Frequency)
			},
		},
		{
			name: "should accept large frequency without upper bound",
			input: Input{
				FrequencyText: "500",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "never",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				assert.Equal(t, 500, rule.Frequency)
			},
		},
		{
			name: "should default unrecognized unit to days",
			input: Input{
				FrequencyText: "1",
				Unit:          "fortnights",
				StartDate:     testNow,
				EndCondition:  "never",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				assert.Equal(t, domain.UnitDays, rule.Unit)
			},
		},
		{
			name: "should default occurrences to 5 on non-numeric text",
			input: Input{
				FrequencyText:   "1",
				Unit:            "days",
				StartDate:       testNow,
				EndCondition:    "after_occurrences",
				OccurrencesText: "lots",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				count, ok := rule.EndsAfter()
				require.True(t, ok)
				assert.Equal(t, 5, count)
			},
		},
		{
			name: "should parse explicit occurrence count",
			input: Input{
				FrequencyText:   "1",
				Unit:            "days",
				StartDate:       testNow,
				EndCondition:    "after_occurrences",
				OccurrencesText: "12",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				count, ok := rule.EndsAfter()
				require.True(t, ok)
				assert.Equal(t, 12, count)
			},
		},
		{
			name: "should drop occurrence count when end condition is never",
			input: Input{
				FrequencyText:   "1",
				Unit:            "days",
				StartDate:       testNow,
				EndCondition:    "never",
				OccurrencesText: "12",
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				_, ok := rule.EndsAfter()
				assert.False(t, ok)
			},
		},
		{
			name: "should drop end date when end condition is never",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "never",
				EndDate:       datePtr(testNow.AddDate(0, 1, 0)),
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				_, ok := rule.EndsOn()
				assert.False(t, ok)
			},
		},
		{
			name: "should build rule ending on a date",
			input: Input{
				FrequencyText: "1",
				Unit:          "weeks",
				StartDate:     testNow,
				EndCondition:  "on_date",
				EndDate:       datePtr(testNow.AddDate(0, 2, 0)),
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				endDate, ok := rule.EndsOn()
				require.True(t, ok)
				assert.Equal(t, domain.DateOf(testNow.AddDate(0, 2, 0)), endDate)
			},
		},
		{
			name: "should carry skip weekends flag",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "never",
				SkipWeekends:  true,
			},
			expectedRule: func(t *testing.T, rule domain.RecurrenceRule) {
				assert.True(t, rule.SkipWeekends)
			},
		},
		{
			name: "should fail on unrecognized end condition",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "eventually",
			},
			expectError: true,
		},
		{
			name: "should fail when end date is required but missing",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "on_date",
			},
			expectError: true,
		},
		{
			name: "should fail when end date precedes start date",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "on_date",
				EndDate:       datePtr(testNow.AddDate(0, 0, -1)),
			},
			expectError: true,
		},
		{
			name: "should fail when start date is in the past",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow.AddDate(0, 0, -1),
				EndCondition:  "never",
			},
			expectError: true,
		},
		{
			name: "should fail when start date is beyond the two year horizon",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow.AddDate(2, 0, 1),
				EndCondition:  "never",
			},
			expectError: true,
		},
		{
			name: "should fail when end date is beyond the two year horizon",
			input: Input{
				FrequencyText: "1",
				Unit:          "days",
				StartDate:     testNow,
				EndCondition:  "on_date",
				EndDate:       datePtr(testNow.AddDate(2, 0, 1)),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			rule, err := builder.Build(tt.input, testNow)

			// Assert
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidRule(err), "expected an invalid rule error, got: %v", err)
			} else {
				require.NoError(t, err)
				assert.True(t, rule.Frequency >= 1)
				assert.True(t, rule.IsValid())
				tt.expectedRule(t, rule)
			}
		})
	}
}

func TestBuilder_Build_EndConditionSpellings(t *testing.T) {
	builder := NewBuilder()

	// The end condition token tolerates hyphens, spaces and case differences
	spellings := map[string]string{
		"never":             "never",
		"Never":             "never",
		"on_date":           "on_date",
		"on-date":           "on_date",
		"ON DATE":           "on_date",
		"after_occurrences": "after_occurrences",
		"After Occurrences": "after_occurrences",
	}

	for spelling, canonical := range spellings {
		input := Input{
			FrequencyText: "1",
			Unit:          "days",
			StartDate:     testNow,
			EndCondition:  spelling,
		}
		if canonical == "on_date" {
			input.EndDate = datePtr(testNow.AddDate(0, 1, 0))
		}

		rule, err := builder.Build(input, testNow)
		require.NoError(t, err, "spelling %q should parse", spelling)

		switch canonical {
		case "never":
			assert.IsType(t, domain.EndNever{}, rule.End)
		case "on_date":
			assert.IsType(t, domain.EndOnDate{}, rule.End)
		case "after_occurrences":
			assert.IsType(t, domain.EndAfterOccurrences{}, rule.End)
		}
	}
}

func TestParseUnit(t *testing.T) {
	assert.Equal(t, domain.UnitDays, ParseUnit("days"))
	assert.Equal(t, domain.UnitWeeks, ParseUnit("weeks"))
	assert.Equal(t, domain.UnitMonths, ParseUnit("months"))
	assert.Equal(t, domain.UnitWeeks, ParseUnit("Week"))
	assert.Equal(t, domain.UnitMonths, ParseUnit("mo"))
	assert.Equal(t, domain.UnitDays, ParseUnit("yearly"))
	assert.Equal(t, domain.UnitDays, ParseUnit(""))
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, parseCount("3", 1))
	assert.Equal(t, 3, parseCount(" 3 ", 1))
	assert.Equal(t, 1, parseCount("abc", 1))
	assert.Equal(t, 5, parseCount("", 5))
	assert.Equal(t, 5, parseCount("0", 5))
	assert.Equal(t, 5, parseCount("-2", 5))
}
