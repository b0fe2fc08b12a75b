package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov/taskvault/internal/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	// Синхронизация запускается только при доступном сервере
	if !c.syncService.CheckConnectivity(ctx) {
		c.io.Println("Server is unreachable. Your changes are saved locally")
		c.io.Println("and will be uploaded once the server is available.")
		return fmt.Errorf("server is unreachable")
	}

	c.io.Println("Starting synchronization with server...")
	c.io.Println()

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrSyncInProgress) {
			return fmt.Errorf("synchronization is already running")
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Success {
		c.io.Println("✓ Synchronization completed successfully!")
	} else {
		c.io.Println("Synchronization completed with errors.")
	}
	c.io.Println()
	c.io.Printf("Synced: %d entries\n", result.SyncedCount)
	if result.FailedCount > 0 {
		c.io.Printf("Failed: %d entries\n", result.FailedCount)
		c.io.Println()
		for _, syncErr := range result.Errors {
			c.io.Printf("  task %s (%s): %s\n", syncErr.TaskID, syncErr.Operation, syncErr.Message)
		}
	}

	return nil
}
