package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var completedAt sql.NullString
	var createdAt string

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.Points,
		&task.PointsEarned,
		&completedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		t, err := ParseTimeFromDB(completedAt.String)
		if err != nil {
			return nil, err
		}
		task.CompletedAt = &t
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanRecurrenceRule scans a single recurrence rule from a database row
func ScanRecurrenceRule(scanner Scanner) (*RecurrenceRule, error) {
	rule := &RecurrenceRule{}
	var startDate string
	var endDate sql.NullString
	var occurrenceCount sql.NullInt64

	err := scanner.Scan(
		&rule.ID,
		&rule.TaskID,
		&rule.Frequency,
		&rule.Unit,
		&startDate,
		&rule.EndType,
		&endDate,
		&occurrenceCount,
		&rule.SkipWeekends,
	)
	if err != nil {
		return nil, err
	}

	rule.StartDate, err = ParseDateFromDB(startDate)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		d, err := ParseDateFromDB(endDate.String)
		if err != nil {
			return nil, err
		}
		rule.EndDate = &d
	}

	if occurrenceCount.Valid {
		rule.OccurrenceCount = &occurrenceCount.Int64
	}

	return rule, nil
}
