package cli

import (
	"context"
	"fmt"

	"taskquest/internal/api"
	"taskquest/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, showAll bool) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	shown := 0
	for _, task := range tasks {
		if !showAll && task.Status != domain.StatusPending {
			continue
		}
		fmt.Println(formatTaskLine(task))
		shown++
	}

	if shown == 0 {
		if showAll {
			fmt.Println("No tasks found.")
		} else {
			fmt.Println("No pending tasks. Use --all to include completed and archived tasks.")
		}
	}

	return nil
}

// formatTaskLine formats one task for list output
func formatTaskLine(task *domain.Task) string {
	line := fmt.Sprintf("%4d  [%-9s] %s (%d points)", task.ID, task.Status, task.Title, task.Points)
	if task.CompletedAt != nil {
		line += fmt.Sprintf(" — completed %s", task.CompletedAt.Format("2006-01-02"))
	}
	return line
}
