package cli

import (
	"context"
	"fmt"

	"taskquest/internal/api"
	"taskquest/internal/errors"
)

// NextCommand handles the next command
type NextCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewNextCommand creates a new next command handler
func NewNextCommand(app *App) *NextCommand {
	return &NextCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the next command
func (c *NextCommand) Execute(ctx context.Context, args []string, count int) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "next", "usage: tq next <task-id> [--count N]")
	}
	if count < 1 {
		return errors.NewInvalidInputError("count", count, "must be a positive integer")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	occurrences, err := c.api.NextOccurrences(ctx, id, timeNow(), count)
	if err != nil {
		return c.errorHandler.Handle("expand occurrences", err)
	}

	if len(occurrences) == 0 {
		fmt.Printf("Task %d has no upcoming occurrences.\n", id)
		return nil
	}

	fmt.Printf("Upcoming occurrences for task %d:\n", id)
	for _, occurrence := range occurrences {
		fmt.Printf("  %s (%s)\n", occurrence.Format("2006-01-02"), occurrence.Format("Mon"))
	}

	return nil
}
