package services

import (
	"context"
	"time"

	"taskquest/internal/domain"
	"taskquest/internal/recurrence"
)

// PointsService handles points aggregation and reporting operations
type PointsService interface {
	// WeeklySeries computes the points earned per day for the trailing
	// 7-day window ending at now, today inclusive.
	WeeklySeries(ctx context.Context, now time.Time) (domain.DailyPointsSeries, error)
}

// RecurrenceService handles recurrence rule lifecycle and occurrence expansion
type RecurrenceService interface {
	// AttachRule builds a rule from raw input and stores it for the task,
	// replacing any existing rule.
	AttachRule(ctx context.Context, taskID int64, input recurrence.Input, now time.Time) (domain.RecurrenceRule, error)

	// GetRule returns the stored rule for a task.
	GetRule(ctx context.Context, taskID int64) (domain.RecurrenceRule, error)

	// RemoveRule deletes the stored rule for a task.
	RemoveRule(ctx context.Context, taskID int64) error

	// PreviewOccurrences expands the task's rule into its next n occurrences
	// strictly after the given time.
	PreviewOccurrences(ctx context.Context, taskID int64, after time.Time, n int) ([]time.Time, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	PointsService     PointsService
	RecurrenceService RecurrenceService
}
