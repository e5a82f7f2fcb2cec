package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/domain"
	"taskquest/internal/errors"
	"taskquest/internal/recurrence"
	"taskquest/internal/repository/sqlite"
)

func setupRecurrenceTest(t *testing.T) (RecurrenceService, sqlite.Repository, int64) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	task := &sqlite.Task{Title: "recurring chore", Status: "pending", Points: 10, CreatedAt: aggNow}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	return NewRecurrenceService(repo), repo, task.ID
}

func TestRecurrenceService_AttachAndGetRule(t *testing.T) {
	service, _, taskID := setupRecurrenceTest(t)
	ctx := context.Background()

	input := recurrence.Input{
		FrequencyText:   "2",
		Unit:            "weeks",
		StartDate:       aggNow,
		EndCondition:    "after_occurrences",
		OccurrencesText: "4",
		SkipWeekends:    true,
	}

	attached, err := service.AttachRule(ctx, taskID, input, aggNow)
	require.NoError(t, err)
	assert.Equal(t, 2, attached.Frequency)
	assert.Equal(t, domain.UnitWeeks, attached.Unit)

	// The stored rule round-trips through the database intact
	stored, err := service.GetRule(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, attached, stored)
}

func TestRecurrenceService_AttachRule_ReplacesExisting(t *testing.T) {
	service, _, taskID := setupRecurrenceTest(t)
	ctx := context.Background()

	first := recurrence.Input{FrequencyText: "1", Unit: "days", StartDate: aggNow, EndCondition: "never"}
	_, err := service.AttachRule(ctx, taskID, first, aggNow)
	require.NoError(t, err)

	second := recurrence.Input{FrequencyText: "3", Unit: "months", StartDate: aggNow, EndCondition: "never"}
	_, err = service.AttachRule(ctx, taskID, second, aggNow)
	require.NoError(t, err)

	stored, err := service.GetRule(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Frequency)
	assert.Equal(t, domain.UnitMonths, stored.Unit)
}

func TestRecurrenceService_AttachRule_Failures(t *testing.T) {
	service, _, taskID := setupRecurrenceTest(t)
	ctx := context.Background()
	valid := recurrence.Input{FrequencyText: "1", Unit: "days", StartDate: aggNow, EndCondition: "never"}

	t.Run("should reject a non-positive task ID", func(t *testing.T) {
		_, err := service.AttachRule(ctx, 0, valid, aggNow)
		assert.Error(t, err)
	})

	t.Run("should reject a missing task", func(t *testing.T) {
		_, err := service.AttachRule(ctx, taskID+100, valid, aggNow)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should reject an invalid rule", func(t *testing.T) {
		bad := recurrence.Input{FrequencyText: "1", Unit: "days", StartDate: aggNow, EndCondition: "someday"}

		_, err := service.AttachRule(ctx, taskID, bad, aggNow)

		assert.True(t, errors.IsInvalidRule(err))

		// Nothing was stored
		_, err = service.GetRule(ctx, taskID)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestRecurrenceService_CustomHorizon(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	task := &sqlite.Task{Title: "long range chore", Status: "pending", Points: 10, CreatedAt: aggNow}
	require.NoError(t, repo.CreateTask(ctx, task))

	input := recurrence.Input{
		FrequencyText: "1",
		Unit:          "months",
		StartDate:     aggNow.AddDate(3, 0, 0),
		EndCondition:  "never",
	}

	// The configured horizon governs how far ahead rule dates may lie
	wide := NewRecurrenceServiceWithHorizon(repo, 5)
	_, err = wide.AttachRule(ctx, task.ID, input, aggNow)
	assert.NoError(t, err)

	narrow := NewRecurrenceService(repo)
	_, err = narrow.AttachRule(ctx, task.ID, input, aggNow)
	assert.True(t, errors.IsInvalidRule(err))
}

func TestRecurrenceService_RemoveRule(t *testing.T) {
	service, _, taskID := setupRecurrenceTest(t)
	ctx := context.Background()

	input := recurrence.Input{FrequencyText: "1", Unit: "days", StartDate: aggNow, EndCondition: "never"}
	_, err := service.AttachRule(ctx, taskID, input, aggNow)
	require.NoError(t, err)

	require.NoError(t, service.RemoveRule(ctx, taskID))

	_, err = service.GetRule(ctx, taskID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestRecurrenceService_PreviewOccurrences(t *testing.T) {
	service, _, taskID := setupRecurrenceTest(t)
	ctx := context.Background()

	input := recurrence.Input{FrequencyText: "1", Unit: "days", StartDate: aggNow, EndCondition: "never"}
	_, err := service.AttachRule(ctx, taskID, input, aggNow)
	require.NoError(t, err)

	occurrences, err := service.PreviewOccurrences(ctx, taskID, aggNow, 3)

	require.NoError(t, err)
	require.Len(t, occurrences, 3)
	start := domain.DateOf(aggNow)
	assert.Equal(t, start.AddDate(0, 0, 1), occurrences[0])
	assert.Equal(t, start.AddDate(0, 0, 2), occurrences[1])
	assert.Equal(t, start.AddDate(0, 0, 3), occurrences[2])
}

func TestRecurrenceService_GetRule_CorruptRow(t *testing.T) {
	service, repo, taskID := setupRecurrenceTest(t)
	ctx := context.Background()

	// A discriminator without its payload cannot be decoded
	corrupt := &sqlite.RecurrenceRule{
		TaskID:    taskID,
		Frequency: 1,
		Unit:      "days",
		StartDate: domain.DateOf(aggNow),
		EndType:   "on_date",
	}
	require.NoError(t, repo.SaveRecurrenceRule(ctx, corrupt))

	_, err := service.GetRule(ctx, taskID)

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}
