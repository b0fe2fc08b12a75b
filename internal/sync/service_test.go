package sync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/akarpov/taskvault/internal/api"
	"github.com/akarpov/taskvault/internal/config"
	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/storage"
	"github.com/akarpov/taskvault/pkg/api"
)

// testEnv собирает сервис вместе с моками всех зависимостей
type testEnv struct {
	apiClient *httpClient.ClientAPIMock
	tasks     *storage.TaskStorageMock
	queue     *storage.QueueStorageMock
	metadata  *storage.MetadataStorageMock
	service   Service
}

func newTestEnv(cfg config.Config) *testEnv {
	env := &testEnv{
		apiClient: &httpClient.ClientAPIMock{},
		tasks:     &storage.TaskStorageMock{},
		queue:     &storage.QueueStorageMock{},
		metadata:  &storage.MetadataStorageMock{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.service = NewService(cfg, env.apiClient, env.tasks, env.queue, env.metadata, logger)

	// Метаданные в большинстве тестов не важны
	env.metadata.SaveLastSyncTimeFunc = func(ctx context.Context, ts time.Time) error {
		return nil
	}

	return env
}

func makeEntry(id, taskID, operation string, createdAt time.Time) *models.QueueEntry {
	return &models.QueueEntry{
		ID:        id,
		TaskID:    taskID,
		Operation: operation,
		Payload:   []byte(`{"title":"test"}`),
		CreatedAt: createdAt,
	}
}

func successResponse(items []api.SyncItem) *api.SyncResponse {
	resp := &api.SyncResponse{}
	for _, item := range items {
		resp.ProcessedItems = append(resp.ProcessedItems, api.ProcessedItem{
			ClientID: item.ID,
			ServerID: "srv-" + item.TaskID,
			Status:   api.ItemStatusSuccess,
		})
	}
	return resp
}

func TestService_Sync_EmptyQueue(t *testing.T) {
	env := newTestEnv(config.Default())
	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return nil, nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.SyncedCount)
	assert.Equal(t, 0, result.FailedCount)
	assert.Empty(t, result.Errors)
	// Пустая очередь не порождает сетевых запросов
	assert.Empty(t, env.apiClient.SyncBatchCalls())
	assert.Empty(t, env.metadata.SaveLastSyncTimeCalls())
}

func TestService_Sync_QueueReadError(t *testing.T) {
	env := newTestEnv(config.Default())
	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return nil, errors.New("db is closed")
	}

	result, err := env.service.Sync(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to read sync queue")
}

func TestService_Sync_Success(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationCreate, now),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return successResponse(req.Items), nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{ID: id, Title: "test", SyncStatus: models.SyncStatusPending}, nil
	}

	var confirmed *models.Task
	var confirmedEntryID string
	env.tasks.ConfirmTaskSyncedFunc = func(ctx context.Context, task *models.Task, entryID string) error {
		confirmed = task
		confirmedEntryID = entryID
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.SyncedCount)
	assert.Equal(t, 0, result.FailedCount)

	require.NotNil(t, confirmed)
	assert.Equal(t, "entry-1", confirmedEntryID)
	assert.Equal(t, "srv-task-1", confirmed.ServerID)
	assert.Equal(t, models.SyncStatusSynced, confirmed.SyncStatus)
	require.NotNil(t, confirmed.LastSyncedAt)

	// Успешный прогон фиксирует время синхронизации
	assert.Len(t, env.metadata.SaveLastSyncTimeCalls(), 1)
}

func TestService_Sync_Batching(t *testing.T) {
	now := time.Now()
	cfg := config.Default()
	cfg.BatchSize = 10

	env := newTestEnv(cfg)

	entries := make([]*models.QueueEntry, 0, 25)
	for i := 0; i < 25; i++ {
		entries = append(entries, makeEntry(
			"entry-"+string(rune('a'+i)),
			"task-"+string(rune('a'+i)),
			models.OperationCreate,
			now.Add(time.Duration(i)*time.Millisecond),
		))
	}

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return entries, nil
	}

	var batchSizes []int
	var sentIDs []string
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		batchSizes = append(batchSizes, len(req.Items))
		for _, item := range req.Items {
			sentIDs = append(sentIDs, item.ID)
		}
		return successResponse(req.Items), nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{ID: id, SyncStatus: models.SyncStatusPending}, nil
	}
	env.tasks.ConfirmTaskSyncedFunc = func(ctx context.Context, task *models.Task, entryID string) error {
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 25, result.SyncedCount)
	// Хвостовой batch короче, порядок записей сохранён
	assert.Equal(t, []int{10, 10, 5}, batchSizes)
	require.Len(t, sentIDs, 25)
	for i, entry := range entries {
		assert.Equal(t, entry.ID, sentIDs[i])
	}
}

func TestService_Sync_TaskSyncedAfterLastEntry(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	// Две записи одной задачи: create и update
	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationCreate, now),
			makeEntry("entry-2", "task-1", models.OperationUpdate, now.Add(time.Second)),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return successResponse(req.Items), nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{ID: id, SyncStatus: models.SyncStatusPending}, nil
	}

	var statuses []string
	env.tasks.ConfirmTaskSyncedFunc = func(ctx context.Context, task *models.Task, entryID string) error {
		statuses = append(statuses, task.SyncStatus)
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.SyncedCount)
	// Подтверждение первой записи еще не означает синхронизацию задачи
	assert.Equal(t, []string{models.SyncStatusPending, models.SyncStatusSynced}, statuses)
}

func TestService_Sync_TransportFailure(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationCreate, now),
			makeEntry("entry-2", "task-2", models.OperationDelete, now.Add(time.Second)),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return nil, errors.New("connection refused")
	}

	var retried []string
	env.queue.IncrementRetryFunc = func(ctx context.Context, id, errMsg string) (int, error) {
		retried = append(retried, id)
		assert.Equal(t, "connection refused", errMsg)
		return 1, nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.SyncedCount)
	assert.Equal(t, 2, result.FailedCount)
	assert.Equal(t, []string{"entry-1", "entry-2"}, retried)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "task-1", result.Errors[0].TaskID)
	assert.Equal(t, "connection refused", result.Errors[0].Message)

	// Лимит не исчерпан - задачи не закрепляются в error
	assert.Empty(t, env.tasks.MarkTaskSyncErrorCalls())
	// Без подтверждённых записей время синхронизации не сдвигается
	assert.Empty(t, env.metadata.SaveLastSyncTimeCalls())
}

func TestService_Sync_RetryLimitExceeded(t *testing.T) {
	now := time.Now()
	cfg := config.Default()
	cfg.MaxRetries = 3

	env := newTestEnv(cfg)

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		entry := makeEntry("entry-1", "task-1", models.OperationCreate, now)
		entry.RetryCount = 3
		return []*models.QueueEntry{entry}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return nil, errors.New("connection refused")
	}
	env.queue.IncrementRetryFunc = func(ctx context.Context, id, errMsg string) (int, error) {
		return 4, nil
	}
	env.tasks.MarkTaskSyncErrorFunc = func(ctx context.Context, taskID string) error {
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, env.tasks.MarkTaskSyncErrorCalls(), 1)
	assert.Equal(t, "task-1", env.tasks.MarkTaskSyncErrorCalls()[0].TaskID)
}

func TestService_Sync_ExhaustedEntriesSkipped(t *testing.T) {
	now := time.Now()
	cfg := config.Default()
	cfg.MaxRetries = 3

	env := newTestEnv(cfg)

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		entry := makeEntry("entry-1", "task-1", models.OperationCreate, now)
		entry.RetryCount = 4
		return []*models.QueueEntry{entry}, nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	// Запись за лимитом повторов не отправляется вовсе
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.SyncedCount)
	assert.Empty(t, env.apiClient.SyncBatchCalls())
}

func TestService_Sync_ConflictResolvedByServer(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationUpdate, now),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			ProcessedItems: []api.ProcessedItem{{
				ClientID:     "entry-1",
				ServerID:     "srv-1",
				Status:       api.ItemStatusConflict,
				ResolvedData: json.RawMessage(`{"title":"server wins","completed":true}`),
			}},
		}, nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{ID: id, Title: "local", SyncStatus: models.SyncStatusPending}, nil
	}

	var confirmed *models.Task
	env.tasks.ConfirmTaskSyncedFunc = func(ctx context.Context, task *models.Task, entryID string) error {
		confirmed = task
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.SyncedCount)
	require.NotNil(t, confirmed)
	assert.Equal(t, "server wins", confirmed.Title)
	assert.True(t, confirmed.Completed)
	assert.Equal(t, "srv-1", confirmed.ServerID)
	assert.Equal(t, models.SyncStatusSynced, confirmed.SyncStatus)
}

func TestService_Sync_ConflictUnresolved(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationUpdate, now),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			ProcessedItems: []api.ProcessedItem{{
				ClientID: "entry-1",
				Status:   api.ItemStatusConflict,
			}},
		}, nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{ID: id, SyncStatus: models.SyncStatusPending}, nil
	}
	env.tasks.MarkTaskSyncErrorFunc = func(ctx context.Context, taskID string) error {
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	// Серверная стратегия без resolved_data не разрешает конфликт
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "conflict without resolution from server", result.Errors[0].Message)
	assert.Len(t, env.tasks.MarkTaskSyncErrorCalls(), 1)
}

func TestService_Sync_ConflictLocalWins(t *testing.T) {
	now := time.Now()
	serverTime := now.Add(-time.Hour)

	cfg := config.Default()
	cfg.Resolver = config.ResolverLocalLWW

	env := newTestEnv(cfg)

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationUpdate, now),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			ProcessedItems: []api.ProcessedItem{{
				ClientID:        "entry-1",
				Status:          api.ItemStatusConflict,
				ServerUpdatedAt: &serverTime,
			}},
		}, nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{
			ID:         id,
			Title:      "local wins",
			UpdatedAt:  now,
			SyncStatus: models.SyncStatusPending,
		}, nil
	}

	var confirmed *models.Task
	env.tasks.ConfirmTaskSyncedFunc = func(ctx context.Context, task *models.Task, entryID string) error {
		confirmed = task
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.SyncedCount)
	// Локальная копия новее серверной - её поля не перезаписываются
	require.NotNil(t, confirmed)
	assert.Equal(t, "local wins", confirmed.Title)
	assert.Equal(t, models.SyncStatusSynced, confirmed.SyncStatus)
}

func TestService_Sync_ServerRejectedItem(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationCreate, now),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			ProcessedItems: []api.ProcessedItem{{
				ClientID: "entry-1",
				Status:   api.ItemStatusError,
				Error:    "payload validation failed",
			}},
		}, nil
	}
	env.tasks.MarkTaskSyncErrorFunc = func(ctx context.Context, taskID string) error {
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "payload validation failed", result.Errors[0].Message)
}

func TestService_Sync_MissingResponseItem(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationCreate, now),
		}, nil
	}
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{}, nil
	}
	env.tasks.MarkTaskSyncErrorFunc = func(ctx context.Context, taskID string) error {
		return nil
	}

	result, err := env.service.Sync(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "server returned no result for entry", result.Errors[0].Message)
}

func TestService_Sync_RejectsConcurrentRun(t *testing.T) {
	now := time.Now()
	env := newTestEnv(config.Default())

	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return []*models.QueueEntry{
			makeEntry("entry-1", "task-1", models.OperationCreate, now),
		}, nil
	}

	started := make(chan struct{})
	release := make(chan struct{})
	env.apiClient.SyncBatchFunc = func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
		close(started)
		<-release
		return successResponse(req.Items), nil
	}
	env.tasks.GetTaskFunc = func(ctx context.Context, id string) (*models.Task, error) {
		return &models.Task{ID: id, SyncStatus: models.SyncStatusPending}, nil
	}
	env.tasks.ConfirmTaskSyncedFunc = func(ctx context.Context, task *models.Task, entryID string) error {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := env.service.Sync(context.Background())
		done <- err
	}()

	<-started

	// Второй вызов отклоняется сразу, не дожидаясь первого
	_, err := env.service.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)

	// После завершения прогона новый запуск снова возможен
	env.queue.ListEntriesOrderedFunc = func(ctx context.Context) ([]*models.QueueEntry, error) {
		return nil, nil
	}
	_, err = env.service.Sync(context.Background())
	assert.NoError(t, err)
}

func TestService_CheckConnectivity(t *testing.T) {
	tests := []struct {
		healthErr error
		name      string
		want      bool
	}{
		{name: "server reachable", healthErr: nil, want: true},
		{name: "server unreachable", healthErr: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(config.Default())
			env.apiClient.HealthFunc = func(ctx context.Context) error {
				// Проба ограничена таймаутом из конфигурации
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return tt.healthErr
			}

			got := env.service.CheckConnectivity(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetStatus(t *testing.T) {
	lastSync := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(config.Default())
	env.queue.CountEntriesFunc = func(ctx context.Context) (int, error) {
		return 7, nil
	}
	env.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (time.Time, error) {
		return lastSync, nil
	}
	env.apiClient.HealthFunc = func(ctx context.Context) error {
		return nil
	}

	status, err := env.service.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, status.PendingCount)
	assert.Equal(t, lastSync, status.LastSyncedAt)
	assert.True(t, status.Online)
}

func TestService_GetStatus_CountError(t *testing.T) {
	env := newTestEnv(config.Default())
	env.queue.CountEntriesFunc = func(ctx context.Context) (int, error) {
		return 0, errors.New("db is closed")
	}

	status, err := env.service.GetStatus(context.Background())
	require.Error(t, err)
	assert.Nil(t, status)
}

func TestService_GetStatus_MetadataErrorIsNotFatal(t *testing.T) {
	env := newTestEnv(config.Default())
	env.queue.CountEntriesFunc = func(ctx context.Context) (int, error) {
		return 0, nil
	}
	env.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (time.Time, error) {
		return time.Time{}, errors.New("bucket missing")
	}
	env.apiClient.HealthFunc = func(ctx context.Context) error {
		return errors.New("connection refused")
	}

	status, err := env.service.GetStatus(context.Background())
	require.NoError(t, err)

	assert.True(t, status.LastSyncedAt.IsZero())
	assert.False(t, status.Online)
}
