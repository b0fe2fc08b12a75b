package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov/taskvault/internal/storage"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. Usage: taskvault delete <id>")
	}

	id := args[0]

	if err := c.taskService.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return fmt.Errorf("task %s not found", id)
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.io.Println("✓ Task deleted!")
	c.io.Println()
	c.io.Println("The deletion will be uploaded on the next 'taskvault sync'.")

	return nil
}
