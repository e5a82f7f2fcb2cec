package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskquest/internal/errors"
	"taskquest/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListCompletedSince(ctx context.Context, since time.Time) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Recurrence rule operations
	SaveRecurrenceRule(ctx context.Context, rule *RecurrenceRule) error
	GetRecurrenceRule(ctx context.Context, taskID int64) (*RecurrenceRule, error)
	DeleteRecurrenceRule(ctx context.Context, taskID int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection keeps the foreign_keys pragma in force and makes
	// in-memory databases behave: every new connection to :memory: would
	// otherwise start from an empty schema.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, status, points, points_earned, completed_at, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Title, task.Status, task.Points, task.PointsEarned,
		FormatTimePtrForDB(task.CompletedAt), FormatTimeForDB(task.CreatedAt))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, title, status, points, points_earned, completed_at, created_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by creation time
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, title, status, points, points_earned, completed_at, created_at
	FROM tasks
	ORDER BY created_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListCompletedSince retrieves completed tasks whose completion time is at or
// after the given cutoff, ordered oldest first.
func (r *SQLiteRepository) ListCompletedSince(ctx context.Context, since time.Time) ([]*Task, error) {
	query := `
	SELECT id, title, status, points, points_earned, completed_at, created_at
	FROM tasks
	WHERE status = ? AND completed_at IS NOT NULL AND completed_at >= ?
	ORDER BY completed_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", "completed", FormatTimeForDB(since))
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, status = ?, points = ?, points_earned = ?, completed_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Title, task.Status, task.Points, task.PointsEarned,
		FormatTimePtrForDB(task.CompletedAt), task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// SaveRecurrenceRule inserts or replaces the recurrence rule for a task.
// A task has at most one rule.
func (r *SQLiteRepository) SaveRecurrenceRule(ctx context.Context, rule *RecurrenceRule) error {
	query := `
	INSERT INTO recurrence_rules (task_id, frequency, unit, start_date, end_type, end_date, occurrence_count, skip_weekends)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(task_id) DO UPDATE SET
		frequency = excluded.frequency,
		unit = excluded.unit,
		start_date = excluded.start_date,
		end_type = excluded.end_type,
		end_date = excluded.end_date,
		occurrence_count = excluded.occurrence_count,
		skip_weekends = excluded.skip_weekends`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		rule.TaskID, rule.Frequency, rule.Unit, FormatDateForDB(rule.StartDate),
		rule.EndType, FormatDatePtrForDB(rule.EndDate), rule.OccurrenceCount, rule.SkipWeekends)
	if err != nil {
		return err
	}

	rule.ID = id
	return nil
}

// GetRecurrenceRule retrieves the recurrence rule for a task
func (r *SQLiteRepository) GetRecurrenceRule(ctx context.Context, taskID int64) (*RecurrenceRule, error) {
	query := `
	SELECT id, task_id, frequency, unit, start_date, end_type, end_date, occurrence_count, skip_weekends
	FROM recurrence_rules
	WHERE task_id = ?`

	return QuerySingle(ctx, r.db, query, ScanRecurrenceRule, "recurrence rule", fmt.Sprintf("task %d", taskID), taskID)
}

// DeleteRecurrenceRule deletes the recurrence rule for a task
func (r *SQLiteRepository) DeleteRecurrenceRule(ctx context.Context, taskID int64) error {
	query := `DELETE FROM recurrence_rules WHERE task_id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "recurrence rule", fmt.Sprintf("task %d", taskID), taskID)
}
