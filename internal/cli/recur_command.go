package cli

import (
	"context"
	"fmt"

	"taskquest/internal/api"
	"taskquest/internal/recurrence"
)

// RecurCommand handles the recur command
type RecurCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewRecurCommand creates a new recur command handler
func NewRecurCommand(app *App) *RecurCommand {
	return &RecurCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the recur command
func (c *RecurCommand) Execute(ctx context.Context, args []string, input recurrence.Input) error {
	if len(args) != 1 {
		return c.usageError()
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	rule, err := c.api.SetRecurrence(ctx, id, input, timeNow())
	if err != nil {
		return c.errorHandler.Handle("set recurrence", err)
	}

	fmt.Printf("Task %d now repeats %s\n", id, rule)
	return nil
}

func (c *RecurCommand) usageError() error {
	return fmt.Errorf("usage: tq recur <task-id> [--every N] [--unit days|weeks|months] " +
		"[--start YYYY-MM-DD] [--end never|on_date|after_occurrences] " +
		"[--end-date YYYY-MM-DD] [--occurrences N] [--skip-weekends]")
}
