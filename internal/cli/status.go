package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Synchronization Status ===")
	c.io.Println()

	status, err := c.syncService.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if status.Online {
		c.io.Println("Server: reachable")
	} else {
		c.io.Println("Server: unreachable")
	}

	c.io.Printf("Pending entries: %d\n", status.PendingCount)

	if status.LastSyncedAt.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", status.LastSyncedAt.Format(time.RFC3339))
	}

	if status.PendingCount > 0 {
		tasks, err := c.taskService.ListPendingSync(ctx)
		if err != nil {
			return fmt.Errorf("failed to list unsynced tasks: %w", err)
		}

		c.io.Println()
		c.io.Printf("Tasks awaiting synchronization (%d):\n", len(tasks))
		for _, task := range tasks {
			c.io.Printf("  %s  %s (%s)\n", task.ID, task.Title, task.SyncStatus)
		}
		c.io.Println()
		c.io.Println("Run 'taskvault sync' to upload pending changes.")
	}

	return nil
}
