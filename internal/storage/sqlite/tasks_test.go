package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	return s, func() {
		require.NoError(t, s.Close())
	}
}

func newTestTask(now time.Time) *models.Task {
	return &models.Task{
		ID:         uuid.New().String(),
		Title:      "buy milk",
		SyncStatus: models.SyncStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestStorage_SaveTaskWithEntry(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	task := newTestTask(now)
	entry, err := models.NewCreateEntry(task, now)
	require.NoError(t, err)

	require.NoError(t, s.SaveTaskWithEntry(ctx, task, entry))

	// Задача сохранилась
	retrieved, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, retrieved.Title)
	assert.Equal(t, models.SyncStatusPending, retrieved.SyncStatus)
	assert.Equal(t, now.UnixNano(), retrieved.CreatedAt.UnixNano())
	assert.Nil(t, retrieved.LastSyncedAt)

	// И запись очереди тоже
	entries, err := s.ListEntriesOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, task.ID, entries[0].TaskID)
}

func TestStorage_SaveTaskWithEntry_NilEntry(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	task := newTestTask(now)

	require.NoError(t, s.SaveTaskWithEntry(ctx, task, nil))

	count, err := s.CountEntries(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStorage_SaveTaskWithEntry_Atomic(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	first := newTestTask(now)
	entry, err := models.NewCreateEntry(first, now)
	require.NoError(t, err)
	require.NoError(t, s.SaveTaskWithEntry(ctx, first, entry))

	// Вторая задача с дублирующим id записи очереди: insert в очередь
	// упадёт, и запись задачи должна откатиться вместе с ним
	second := newTestTask(now)
	dupEntry, err := models.NewCreateEntry(second, now)
	require.NoError(t, err)
	dupEntry.ID = entry.ID

	err = s.SaveTaskWithEntry(ctx, second, dupEntry)
	require.Error(t, err)

	_, err = s.GetTask(ctx, second.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	count, err := s.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorage_GetTask_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestStorage_GetTask_IncludesDeleted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	task := newTestTask(now)
	task.IsDeleted = true
	require.NoError(t, s.SaveTaskWithEntry(ctx, task, nil))

	retrieved, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.IsDeleted)
}

func TestStorage_ListActiveTasks(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()

	first := newTestTask(now)
	second := newTestTask(now.Add(time.Second))
	deleted := newTestTask(now.Add(2 * time.Second))
	deleted.IsDeleted = true

	require.NoError(t, s.SaveTaskWithEntry(ctx, second, nil))
	require.NoError(t, s.SaveTaskWithEntry(ctx, first, nil))
	require.NoError(t, s.SaveTaskWithEntry(ctx, deleted, nil))

	tasks, err := s.ListActiveTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Порядок стабилен: по времени создания
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
}

func TestStorage_ListUnsyncedTasks(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()

	pending := newTestTask(now)
	failed := newTestTask(now.Add(time.Second))
	failed.SyncStatus = models.SyncStatusError
	synced := newTestTask(now.Add(2 * time.Second))
	synced.SyncStatus = models.SyncStatusSynced

	require.NoError(t, s.SaveTaskWithEntry(ctx, pending, nil))
	require.NoError(t, s.SaveTaskWithEntry(ctx, failed, nil))
	require.NoError(t, s.SaveTaskWithEntry(ctx, synced, nil))

	tasks, err := s.ListUnsyncedTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, pending.ID, tasks[0].ID)
	assert.Equal(t, failed.ID, tasks[1].ID)
}

func TestStorage_ConfirmTaskSynced(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	task := newTestTask(now)
	entry, err := models.NewCreateEntry(task, now)
	require.NoError(t, err)
	require.NoError(t, s.SaveTaskWithEntry(ctx, task, entry))

	syncedAt := now.Add(time.Minute)
	task.SyncStatus = models.SyncStatusSynced
	task.ServerID = "srv-42"
	task.LastSyncedAt = &syncedAt

	require.NoError(t, s.ConfirmTaskSynced(ctx, task, entry.ID))

	retrieved, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, retrieved.SyncStatus)
	assert.Equal(t, "srv-42", retrieved.ServerID)
	require.NotNil(t, retrieved.LastSyncedAt)
	assert.Equal(t, syncedAt.UnixNano(), retrieved.LastSyncedAt.UnixNano())

	count, err := s.CountEntries(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStorage_ConfirmTaskSynced_MissingEntry(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	task := newTestTask(now)
	require.NoError(t, s.SaveTaskWithEntry(ctx, task, nil))

	task.SyncStatus = models.SyncStatusSynced

	// Запись очереди не существует: вся транзакция откатывается,
	// задача остаётся pending
	err := s.ConfirmTaskSynced(ctx, task, "missing-entry")
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	retrieved, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, retrieved.SyncStatus)
}

func TestStorage_MarkTaskSyncError(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	task := newTestTask(now)
	require.NoError(t, s.SaveTaskWithEntry(ctx, task, nil))

	require.NoError(t, s.MarkTaskSyncError(ctx, task.ID))

	retrieved, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusError, retrieved.SyncStatus)

	assert.ErrorIs(t, s.MarkTaskSyncError(ctx, "missing"), storage.ErrTaskNotFound)
}
