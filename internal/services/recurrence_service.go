package services

import (
	"context"
	"time"

	"taskquest/internal/domain"
	"taskquest/internal/errors"
	"taskquest/internal/recurrence"
	"taskquest/internal/repository/sqlite"
	"taskquest/internal/validation"
)

// recurrenceServiceImpl implements the RecurrenceService interface
type recurrenceServiceImpl struct {
	repo          sqlite.Repository
	builder       *recurrence.Builder
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewRecurrenceService creates a new RecurrenceService instance with the
// default date horizon
func NewRecurrenceService(repo sqlite.Repository) RecurrenceService {
	return NewRecurrenceServiceWithHorizon(repo, validation.DefaultHorizonYears)
}

// NewRecurrenceServiceWithHorizon creates a new RecurrenceService instance
// whose rule dates may lie up to horizonYears in the future
func NewRecurrenceServiceWithHorizon(repo sqlite.Repository, horizonYears int) RecurrenceService {
	return &recurrenceServiceImpl{
		repo:          repo,
		builder:       recurrence.NewBuilderWithValidator(validation.NewRuleValidatorWithHorizon(horizonYears)),
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// AttachRule builds a rule from raw input and stores it for the task.
func (s *recurrenceServiceImpl) AttachRule(ctx context.Context, taskID int64, input recurrence.Input, now time.Time) (domain.RecurrenceRule, error) {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return domain.RecurrenceRule{}, err
	}

	// The task must exist before a rule can reference it.
	if _, err := s.repo.GetTask(ctx, taskID); err != nil {
		return domain.RecurrenceRule{}, err
	}

	rule, err := s.builder.Build(input, now)
	if err != nil {
		return domain.RecurrenceRule{}, err
	}

	dbRule := s.mapper.Rule.ToDatabase(taskID, rule)
	if err := s.repo.SaveRecurrenceRule(ctx, &dbRule); err != nil {
		return domain.RecurrenceRule{}, err
	}

	return rule, nil
}

// GetRule returns the stored rule for a task.
func (s *recurrenceServiceImpl) GetRule(ctx context.Context, taskID int64) (domain.RecurrenceRule, error) {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return domain.RecurrenceRule{}, err
	}

	dbRule, err := s.repo.GetRecurrenceRule(ctx, taskID)
	if err != nil {
		return domain.RecurrenceRule{}, err
	}

	rule, err := s.mapper.Rule.FromDatabase(*dbRule)
	if err != nil {
		return domain.RecurrenceRule{}, errors.WrapError(err, errors.ErrorTypeDatabase, "decode recurrence rule")
	}

	return rule, nil
}

// RemoveRule deletes the stored rule for a task.
func (s *recurrenceServiceImpl) RemoveRule(ctx context.Context, taskID int64) error {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return err
	}
	return s.repo.DeleteRecurrenceRule(ctx, taskID)
}

// PreviewOccurrences expands the task's rule into upcoming occurrences.
func (s *recurrenceServiceImpl) PreviewOccurrences(ctx context.Context, taskID int64, after time.Time, n int) ([]time.Time, error) {
	rule, err := s.GetRule(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return recurrence.NextOccurrences(rule, after, n)
}
