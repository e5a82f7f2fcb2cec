package domain

import (
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusArchived  TaskStatus = "archived"
)

// IsValid checks if the status is one of the known states.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID           int64
	Title        string
	Status       TaskStatus
	Points       int // reward granted when the task is completed
	PointsEarned int // points actually awarded; may be negative after penalties
	CompletedAt  *time.Time
	CreatedAt    time.Time
}

// NewTask creates a new pending Task with the given title and point reward.
func NewTask(title string, points int, createdAt time.Time) Task {
	return Task{
		Title:     title,
		Status:    StatusPending,
		Points:    points,
		CreatedAt: createdAt,
	}
}

// IsCompleted returns true if the task has been completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Complete marks the task completed at the given time, awarding its points.
func (t Task) Complete(completedAt time.Time) Task {
	t.Status = StatusCompleted
	t.CompletedAt = &completedAt
	t.PointsEarned = t.Points
	return t
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Status.IsValid()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
