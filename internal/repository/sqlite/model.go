package sqlite

import "time"

// Task represents a task row in the tasks table.
type Task struct {
	ID           int64
	Title        string
	Status       string
	Points       int64
	PointsEarned int64
	CompletedAt  *time.Time // Using pointer to allow NULL values
	CreatedAt    time.Time
}

// RecurrenceRule represents a row in the recurrence_rules table.
// EndDate and OccurrenceCount are mutually exclusive; which one is set
// depends on the end_type discriminator.
type RecurrenceRule struct {
	ID              int64
	TaskID          int64
	Frequency       int64
	Unit            string
	StartDate       time.Time
	EndType         string
	EndDate         *time.Time
	OccurrenceCount *int64
	SkipWeekends    bool
}
