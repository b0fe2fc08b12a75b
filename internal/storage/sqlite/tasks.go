package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/storage"
)

const taskColumns = `id, server_id, title, description, completed, is_deleted,
	sync_status, last_synced_at, created_at, updated_at`

// SaveTaskWithEntry persists the task and appends the queue entry
// in a single transaction. entry may be nil.
func (s *Storage) SaveTaskWithEntry(ctx context.Context, task *models.Task, entry *models.QueueEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertTaskTx(ctx, tx, task); err != nil {
		return err
	}

	if entry != nil {
		if err := insertEntryTx(ctx, tx, entry); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTask returns the task by local id, including soft-deleted rows
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListActiveTasks returns all non-deleted tasks ordered by creation time
func (s *Storage) ListActiveTasks(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE is_deleted = 0
		ORDER BY created_at, id`

	return s.queryTasks(ctx, query)
}

// ListUnsyncedTasks returns tasks whose sync status is pending or error
func (s *Storage) ListUnsyncedTasks(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE sync_status IN (?, ?)
		ORDER BY created_at, id`

	return s.queryTasks(ctx, query, models.SyncStatusPending, models.SyncStatusError)
}

// ConfirmTaskSynced persists the updated task and deletes the queue entry
// in a single transaction
func (s *Storage) ConfirmTaskSynced(ctx context.Context, task *models.Task, entryID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertTaskTx(ctx, tx, task); err != nil {
		return err
	}

	if err := deleteEntryTx(ctx, tx, entryID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// MarkTaskSyncError pins the task in error status
func (s *Storage) MarkTaskSyncError(ctx context.Context, taskID string) error {
	query := `UPDATE tasks SET sync_status = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, models.SyncStatusError, taskID)
	if err != nil {
		return fmt.Errorf("failed to mark task error: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// queryTasks выполняет запрос и сканирует результат в список задач
func (s *Storage) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// upsertTaskTx вставляет или обновляет задачу в рамках транзакции
func upsertTaskTx(ctx context.Context, tx *sql.Tx, task *models.Task) error {
	query := `
		INSERT INTO tasks (
			id, server_id, title, description, completed, is_deleted,
			sync_status, last_synced_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			server_id = excluded.server_id,
			title = excluded.title,
			description = excluded.description,
			completed = excluded.completed,
			is_deleted = excluded.is_deleted,
			sync_status = excluded.sync_status,
			last_synced_at = excluded.last_synced_at,
			updated_at = excluded.updated_at
	`

	var lastSyncedAt sql.NullInt64
	if task.LastSyncedAt != nil {
		lastSyncedAt = sql.NullInt64{Int64: task.LastSyncedAt.UnixNano(), Valid: true}
	}

	_, err := tx.ExecContext(ctx, query,
		task.ID,
		task.ServerID,
		task.Title,
		task.Description,
		boolToInt(task.Completed),
		boolToInt(task.IsDeleted),
		task.SyncStatus,
		lastSyncedAt,
		task.CreatedAt.UnixNano(),
		task.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return nil
}

// rowScanner абстрагирует *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask сканирует одну строку таблицы tasks
func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task         models.Task
		completed    int
		isDeleted    int
		lastSyncedAt sql.NullInt64
		createdAt    int64
		updatedAt    int64
	)

	err := row.Scan(
		&task.ID,
		&task.ServerID,
		&task.Title,
		&task.Description,
		&completed,
		&isDeleted,
		&task.SyncStatus,
		&lastSyncedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Completed = completed != 0
	task.IsDeleted = isDeleted != 0
	task.CreatedAt = time.Unix(0, createdAt)
	task.UpdatedAt = time.Unix(0, updatedAt)
	if lastSyncedAt.Valid {
		ts := time.Unix(0, lastSyncedAt.Int64)
		task.LastSyncedAt = &ts
	}

	return &task, nil
}
