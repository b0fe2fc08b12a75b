package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	c.io.Println("=== Tasks ===")
	c.io.Println()

	tasks, err := c.taskService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		c.io.Println("No tasks found.")
		c.io.Println()
		c.io.Println("Use 'taskvault add' to add your first task.")
		return nil
	}

	c.io.Printf("Found %d task(s):\n", len(tasks))
	c.io.Println()

	for i, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		c.io.Printf("%d. [%s] %s\n", i+1, mark, task.Title)
		c.io.Printf("   ID:     %s\n", task.ID)
		c.io.Printf("   Sync:   %s\n", task.SyncStatus)
		if task.Description != "" {
			c.io.Printf("   Notes:  %s\n", task.Description)
		}
		c.io.Println()
	}

	return nil
}
