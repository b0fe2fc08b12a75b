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

// AppendEntry appends a queue entry outside of a task transaction
func (s *Storage) AppendEntry(ctx context.Context, entry *models.QueueEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListEntriesOrdered returns all entries ordered by creation time ascending.
// seq разрешает ничью при равных created_at, сохраняя порядок вставки.
func (s *Storage) ListEntriesOrdered(ctx context.Context) ([]*models.QueueEntry, error) {
	query := `
		SELECT id, task_id, operation, payload, retry_count, last_error, created_at
		FROM sync_queue
		ORDER BY created_at, seq
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*models.QueueEntry
	for rows.Next() {
		var (
			entry     models.QueueEntry
			payload   []byte
			createdAt int64
		)

		err := rows.Scan(
			&entry.ID,
			&entry.TaskID,
			&entry.Operation,
			&payload,
			&entry.RetryCount,
			&entry.LastError,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue entry: %w", err)
		}

		entry.Payload = payload
		entry.CreatedAt = time.Unix(0, createdAt)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate queue entries: %w", err)
	}

	return entries, nil
}

// DeleteEntry removes an entry by id
func (s *Storage) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete queue entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

// DeleteEntriesByTask removes all entries referencing the task
func (s *Storage) DeleteEntriesByTask(ctx context.Context, taskID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE task_id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete queue entries by task: %w", err)
	}
	return nil
}

// IncrementRetry increments the retry counter, records the failure
// message and returns the new counter value
func (s *Storage) IncrementRetry(ctx context.Context, id, errMsg string) (int, error) {
	query := `
		UPDATE sync_queue
		SET retry_count = retry_count + 1, last_error = ?
		WHERE id = ?
		RETURNING retry_count
	`

	var newCount int
	err := s.db.QueryRowContext(ctx, query, errMsg, id).Scan(&newCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrEntryNotFound
		}
		return 0, fmt.Errorf("failed to increment retry count: %w", err)
	}

	return newCount, nil
}

// CountEntries returns the number of entries awaiting sync
func (s *Storage) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sync_queue`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue entries: %w", err)
	}
	return count, nil
}

// insertEntryTx вставляет запись очереди в рамках транзакции
func insertEntryTx(ctx context.Context, tx *sql.Tx, entry *models.QueueEntry) error {
	query := `
		INSERT INTO sync_queue (id, task_id, operation, payload, retry_count, last_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		entry.ID,
		entry.TaskID,
		entry.Operation,
		entry.Payload,
		entry.RetryCount,
		entry.LastError,
		entry.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert queue entry: %w", err)
	}

	return nil
}

// deleteEntryTx удаляет запись очереди в рамках транзакции
func deleteEntryTx(ctx context.Context, tx *sql.Tx, entryID string) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete queue entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}
