package storage

import (
	"context"

	"github.com/akarpov/taskvault/internal/models"
)

//go:generate moq -out tasks_mock.go . TaskStorage

// TaskStorage defines interface for the local task store
type TaskStorage interface {
	// SaveTaskWithEntry persists the task and appends the queue entry
	// in a single transaction. Either both take effect or neither does.
	// entry may be nil when no mutation needs to be enqueued.
	SaveTaskWithEntry(ctx context.Context, task *models.Task, entry *models.QueueEntry) error

	// GetTask returns the task by local id, including soft-deleted rows.
	// Returns ErrTaskNotFound if the task doesn't exist.
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// ListActiveTasks returns all non-deleted tasks ordered by creation time
	ListActiveTasks(ctx context.Context) ([]*models.Task, error)

	// ListUnsyncedTasks returns tasks whose sync status is pending or error
	ListUnsyncedTasks(ctx context.Context) ([]*models.Task, error)

	// ConfirmTaskSynced persists the updated task and deletes the queue entry
	// in a single transaction. Used after the server confirmed an item.
	ConfirmTaskSynced(ctx context.Context, task *models.Task, entryID string) error

	// MarkTaskSyncError pins the task in error status.
	// Returns ErrTaskNotFound if the task doesn't exist.
	MarkTaskSyncError(ctx context.Context, taskID string) error
}
