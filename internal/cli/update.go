package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/storage"
)

var updateUsage = "Usage: taskvault update <id> [--title=...] [--description=...] [--done|--undone]"

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. %s", updateUsage)
	}

	id := args[0]
	fields, err := parseUpdateFields(args[1:])
	if err != nil {
		return err
	}
	if fields.IsEmpty() {
		return fmt.Errorf("nothing to update. %s", updateUsage)
	}

	task, err := c.taskService.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return fmt.Errorf("task %s not found", id)
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	c.io.Println("✓ Task updated!")
	c.io.Printf("Title: %s\n", task.Title)
	c.io.Println()
	c.io.Println("The change will be uploaded on the next 'taskvault sync'.")

	return nil
}

// parseUpdateFields собирает частичное изменение из аргументов команды.
// Не заданный аргумент оставляет соответствующее поле без изменений.
func parseUpdateFields(args []string) (models.TaskFields, error) {
	var fields models.TaskFields

	boolPtr := func(v bool) *bool { return &v }

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--title="):
			title := strings.TrimPrefix(arg, "--title=")
			if title == "" {
				return models.TaskFields{}, fmt.Errorf("title cannot be empty")
			}
			fields.Title = &title
		case strings.HasPrefix(arg, "--description="):
			description := strings.TrimPrefix(arg, "--description=")
			fields.Description = &description
		case arg == "--done":
			fields.Completed = boolPtr(true)
		case arg == "--undone":
			fields.Completed = boolPtr(false)
		default:
			return models.TaskFields{}, fmt.Errorf("unknown argument: %s. %s", arg, updateUsage)
		}
	}

	return fields, nil
}
