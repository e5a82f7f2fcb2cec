package domain

import (
	"fmt"

	"taskquest/internal/repository/sqlite"
)

// End-condition discriminator values used in the recurrence_rules table.
const (
	EndTypeNever            = "never"
	EndTypeOnDate           = "on_date"
	EndTypeAfterOccurrences = "after_occurrences"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:           domainTask.ID,
		Title:        domainTask.Title,
		Status:       string(domainTask.Status),
		Points:       int64(domainTask.Points),
		PointsEarned: int64(domainTask.PointsEarned),
		CompletedAt:  domainTask.CompletedAt,
		CreatedAt:    domainTask.CreatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:           dbTask.ID,
		Title:        dbTask.Title,
		Status:       TaskStatus(dbTask.Status),
		Points:       int(dbTask.Points),
		PointsEarned: int(dbTask.PointsEarned),
		CompletedAt:  dbTask.CompletedAt,
		CreatedAt:    dbTask.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := m.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// RuleMapper handles conversion between domain and database recurrence rules.
// The domain side models the end condition as a tagged variant; the database
// side flattens it into a discriminator column plus two nullable payloads.
type RuleMapper struct{}

// NewRuleMapper creates a new RuleMapper instance.
func NewRuleMapper() *RuleMapper {
	return &RuleMapper{}
}

// ToDatabase converts a domain RecurrenceRule to a database RecurrenceRule.
func (m *RuleMapper) ToDatabase(taskID int64, rule RecurrenceRule) sqlite.RecurrenceRule {
	dbRule := sqlite.RecurrenceRule{
		TaskID:       taskID,
		Frequency:    int64(rule.Frequency),
		Unit:         string(rule.Unit),
		StartDate:    rule.StartDate,
		EndType:      EndTypeNever,
		SkipWeekends: rule.SkipWeekends,
	}

	switch end := rule.End.(type) {
	case EndOnDate:
		dbRule.EndType = EndTypeOnDate
		date := end.Date
		dbRule.EndDate = &date
	case EndAfterOccurrences:
		dbRule.EndType = EndTypeAfterOccurrences
		count := int64(end.Count)
		dbRule.OccurrenceCount = &count
	}

	return dbRule
}

// FromDatabase converts a database RecurrenceRule to a domain RecurrenceRule.
// It fails if the stored discriminator does not match its payload.
func (m *RuleMapper) FromDatabase(dbRule sqlite.RecurrenceRule) (RecurrenceRule, error) {
	rule := RecurrenceRule{
		Frequency:    int(dbRule.Frequency),
		Unit:         Unit(dbRule.Unit),
		StartDate:    dbRule.StartDate,
		SkipWeekends: dbRule.SkipWeekends,
	}

	switch dbRule.EndType {
	case EndTypeNever:
		rule.End = EndNever{}
	case EndTypeOnDate:
		if dbRule.EndDate == nil {
			return RecurrenceRule{}, fmt.Errorf("recurrence rule %d has end type %q but no end date", dbRule.ID, dbRule.EndType)
		}
		rule.End = EndOnDate{Date: *dbRule.EndDate}
	case EndTypeAfterOccurrences:
		if dbRule.OccurrenceCount == nil {
			return RecurrenceRule{}, fmt.Errorf("recurrence rule %d has end type %q but no occurrence count", dbRule.ID, dbRule.EndType)
		}
		rule.End = EndAfterOccurrences{Count: int(*dbRule.OccurrenceCount)}
	default:
		return RecurrenceRule{}, fmt.Errorf("recurrence rule %d has unknown end type %q", dbRule.ID, dbRule.EndType)
	}

	return rule, nil
}

// Mapper aggregates all model mappers for convenient dependency injection.
type Mapper struct {
	Task *TaskMapper
	Rule *RuleMapper
}

// NewMapper creates a new aggregate Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
		Rule: NewRuleMapper(),
	}
}
