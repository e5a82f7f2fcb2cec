package api

import (
	"context"
	"time"

	"taskquest/internal/domain"
	"taskquest/internal/errors"
	"taskquest/internal/recurrence"
	"taskquest/internal/repository/sqlite"
	"taskquest/internal/services"
	"taskquest/internal/validation"
)

// API defines the interface for all task, points and recurrence operations.
type API interface {
	// Task operations
	CreateTask(ctx context.Context, title string, points int, now time.Time) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	CompleteTask(ctx context.Context, id int64, now time.Time) (*domain.Task, error)
	ArchiveTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error

	// Points operations
	WeeklyPoints(ctx context.Context, now time.Time) (domain.DailyPointsSeries, error)

	// Recurrence operations
	SetRecurrence(ctx context.Context, taskID int64, input recurrence.Input, now time.Time) (domain.RecurrenceRule, error)
	GetRecurrence(ctx context.Context, taskID int64) (domain.RecurrenceRule, error)
	RemoveRecurrence(ctx context.Context, taskID int64) error
	NextOccurrences(ctx context.Context, taskID int64, after time.Time, n int) ([]time.Time, error)
}

type apiImpl struct {
	repo              sqlite.Repository
	mapper            *domain.Mapper
	taskValidator     *validation.TaskValidator
	pointsService     services.PointsService
	recurrenceService services.RecurrenceService
}

// New creates a new API instance with the default recurrence horizon.
func New(repo sqlite.Repository) API {
	return NewWithHorizon(repo, validation.DefaultHorizonYears)
}

// NewWithHorizon creates a new API instance whose recurrence rule dates may
// lie up to horizonYears in the future.
func NewWithHorizon(repo sqlite.Repository, horizonYears int) API {
	return &apiImpl{
		repo:              repo,
		mapper:            domain.NewMapper(),
		taskValidator:     validation.NewTaskValidator(),
		pointsService:     services.NewPointsService(repo),
		recurrenceService: services.NewRecurrenceServiceWithHorizon(repo, horizonYears),
	}
}

// CreateTask validates the title and stores a new pending task.
func (a *apiImpl) CreateTask(ctx context.Context, title string, points int, now time.Time) (*domain.Task, error) {
	cleanedTitle, err := a.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, err
	}
	if points < 0 {
		return nil, errors.NewInvalidInputError("points", points, "must not be negative")
	}

	task := domain.NewTask(cleanedTitle, points, now)
	dbTask := a.mapper.Task.ToDatabase(task)
	if err := a.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := a.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// GetTask retrieves a task by ID.
func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks retrieves all tasks.
func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// CompleteTask marks a task completed at the given time, awarding its points.
func (a *apiImpl) CompleteTask(ctx context.Context, id int64, now time.Time) (*domain.Task, error) {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted() {
		return nil, errors.NewInvalidInputError("task", id, "already completed")
	}

	completed := task.Complete(now)
	dbTask := a.mapper.Task.ToDatabase(completed)
	if err := a.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return &completed, nil
}

// ArchiveTask moves a task out of the pending list without completing it.
func (a *apiImpl) ArchiveTask(ctx context.Context, id int64) error {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return err
	}

	task.Status = domain.StatusArchived
	dbTask := a.mapper.Task.ToDatabase(*task)
	return a.repo.UpdateTask(ctx, &dbTask)
}

// DeleteTask deletes a task by ID.
func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	return a.repo.DeleteTask(ctx, id)
}

// WeeklyPoints returns the trailing 7-day points series ending at now.
func (a *apiImpl) WeeklyPoints(ctx context.Context, now time.Time) (domain.DailyPointsSeries, error) {
	return a.pointsService.WeeklySeries(ctx, now)
}

// SetRecurrence builds and stores a recurrence rule for a task.
func (a *apiImpl) SetRecurrence(ctx context.Context, taskID int64, input recurrence.Input, now time.Time) (domain.RecurrenceRule, error) {
	return a.recurrenceService.AttachRule(ctx, taskID, input, now)
}

// GetRecurrence returns the stored recurrence rule for a task.
func (a *apiImpl) GetRecurrence(ctx context.Context, taskID int64) (domain.RecurrenceRule, error) {
	return a.recurrenceService.GetRule(ctx, taskID)
}

// RemoveRecurrence deletes the stored recurrence rule for a task.
func (a *apiImpl) RemoveRecurrence(ctx context.Context, taskID int64) error {
	return a.recurrenceService.RemoveRule(ctx, taskID)
}

// NextOccurrences expands a task's rule into its upcoming occurrences.
func (a *apiImpl) NextOccurrences(ctx context.Context, taskID int64, after time.Time, n int) ([]time.Time, error) {
	return a.recurrenceService.PreviewOccurrences(ctx, taskID, after, n)
}
