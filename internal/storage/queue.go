package storage

import (
	"context"

	"github.com/akarpov/taskvault/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable sync queue.
// The queue preserves insertion order; entries for one task always
// come back oldest-created-first.
type QueueStorage interface {
	// AppendEntry appends a queue entry outside of a task transaction.
	// Normal mutations go through TaskStorage.SaveTaskWithEntry instead.
	AppendEntry(ctx context.Context, entry *models.QueueEntry) error

	// ListEntriesOrdered returns all entries ordered by creation time ascending
	ListEntriesOrdered(ctx context.Context) ([]*models.QueueEntry, error)

	// DeleteEntry removes an entry by id.
	// Returns ErrEntryNotFound if the entry doesn't exist.
	DeleteEntry(ctx context.Context, id string) error

	// DeleteEntriesByTask removes all entries referencing the task
	DeleteEntriesByTask(ctx context.Context, taskID string) error

	// IncrementRetry increments the retry counter, records the failure
	// message and returns the new counter value.
	// Returns ErrEntryNotFound if the entry doesn't exist.
	IncrementRetry(ctx context.Context, id, errMsg string) (int, error)

	// CountEntries returns the number of entries awaiting sync
	CountEntries(ctx context.Context) (int, error)
}
