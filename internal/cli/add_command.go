package cli

import (
	"context"
	"fmt"
	"strings"

	"taskquest/internal/api"
	"taskquest/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, points int) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: tq add \"task title\" [--points N]")
	}

	title := strings.Join(args, " ")
	task, err := c.api.CreateTask(ctx, title, points, timeNow())
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s (%d points)\n", task.ID, task.Title, task.Points)
	return nil
}
