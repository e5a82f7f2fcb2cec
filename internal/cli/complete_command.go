package cli

import (
	"context"
	"fmt"
	"strconv"

	"taskquest/internal/api"
	"taskquest/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "complete", "usage: tq complete <task-id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.api.CompleteTask(ctx, id, timeNow())
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Printf("Completed task %d: %s (+%d points)\n", task.ID, task.Title, task.PointsEarned)

	// If the task recurs, show when it is due next.
	if next, err := c.api.NextOccurrences(ctx, id, timeNow(), 1); err == nil && len(next) > 0 {
		fmt.Printf("Next occurrence: %s\n", next[0].Format("2006-01-02"))
	}

	return nil
}

// parseTaskID parses a task ID argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("task_id", arg, "must be a positive integer")
	}
	return id, nil
}
