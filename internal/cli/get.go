package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/taskvault/internal/storage"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task ID. Usage: taskvault get <id>")
	}

	task, err := c.taskService.Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return fmt.Errorf("task %s not found", args[0])
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	c.io.Println("=== Task Details ===")
	c.io.Println()
	c.io.Printf("ID:          %s\n", task.ID)
	c.io.Printf("Title:       %s\n", task.Title)
	if task.Description != "" {
		c.io.Printf("Description: %s\n", task.Description)
	}
	c.io.Printf("Completed:   %v\n", task.Completed)
	c.io.Printf("Sync status: %s\n", task.SyncStatus)
	c.io.Printf("Created:     %s\n", task.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Updated:     %s\n", task.UpdatedAt.Format(time.RFC3339))
	if task.LastSyncedAt != nil {
		c.io.Printf("Last synced: %s\n", task.LastSyncedAt.Format(time.RFC3339))
	}
	if task.ServerID != "" {
		c.io.Printf("Server ID:   %s\n", task.ServerID)
	}

	return nil
}
