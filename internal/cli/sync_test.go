package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/sync"
)

func TestCli_RunSync_Offline(t *testing.T) {
	f := newCliFixture()
	f.sync.CheckConnectivityFunc = func(ctx context.Context) bool {
		return false
	}

	err := f.cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")

	// Без связи с сервером синхронизация даже не начинается
	assert.Empty(t, f.sync.SyncCalls())
	assert.Contains(t, f.output.String(), "saved locally")
}

func TestCli_RunSync_Success(t *testing.T) {
	f := newCliFixture()
	f.sync.CheckConnectivityFunc = func(ctx context.Context) bool {
		return true
	}
	f.sync.SyncFunc = func(ctx context.Context) (*sync.SyncResult, error) {
		return &sync.SyncResult{Success: true, SyncedCount: 3}, nil
	}

	err := f.cli.Run(context.Background(), "sync", nil)
	require.NoError(t, err)

	out := f.output.String()
	assert.Contains(t, out, "completed successfully")
	assert.Contains(t, out, "Synced: 3 entries")
}

func TestCli_RunSync_PartialFailure(t *testing.T) {
	f := newCliFixture()
	f.sync.CheckConnectivityFunc = func(ctx context.Context) bool {
		return true
	}
	f.sync.SyncFunc = func(ctx context.Context) (*sync.SyncResult, error) {
		return &sync.SyncResult{
			SyncedCount: 2,
			FailedCount: 1,
			Errors: []sync.SyncError{{
				TaskID:    "task-3",
				Operation: models.OperationUpdate,
				Message:   "conflict without resolution from server",
			}},
		}, nil
	}

	err := f.cli.Run(context.Background(), "sync", nil)
	require.NoError(t, err)

	out := f.output.String()
	assert.Contains(t, out, "completed with errors")
	assert.Contains(t, out, "Failed: 1 entries")
	assert.Contains(t, out, "task-3")
}

func TestCli_RunSync_AlreadyRunning(t *testing.T) {
	f := newCliFixture()
	f.sync.CheckConnectivityFunc = func(ctx context.Context) bool {
		return true
	}
	f.sync.SyncFunc = func(ctx context.Context) (*sync.SyncResult, error) {
		return nil, sync.ErrSyncInProgress
	}

	err := f.cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestCli_RunStatus(t *testing.T) {
	lastSync := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	f := newCliFixture()
	f.sync.GetStatusFunc = func(ctx context.Context) (*sync.Status, error) {
		return &sync.Status{
			LastSyncedAt: lastSync,
			PendingCount: 4,
			Online:       true,
		}, nil
	}
	f.tasks.ListPendingSyncFunc = func(ctx context.Context) ([]*models.Task, error) {
		return []*models.Task{
			{ID: "task-1", Title: "Buy milk", SyncStatus: models.SyncStatusPending},
			{ID: "task-2", Title: "Walk the dog", SyncStatus: models.SyncStatusError},
		}, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	out := f.output.String()
	assert.Contains(t, out, "Server: reachable")
	assert.Contains(t, out, "Pending entries: 4")
	assert.Contains(t, out, lastSync.Format(time.RFC3339))
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, models.SyncStatusError)
	assert.Contains(t, out, "taskvault sync")
}

func TestCli_RunStatus_NeverSynced(t *testing.T) {
	f := newCliFixture()
	f.sync.GetStatusFunc = func(ctx context.Context) (*sync.Status, error) {
		return &sync.Status{Online: false}, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	out := f.output.String()
	assert.Contains(t, out, "Server: unreachable")
	assert.Contains(t, out, "Last sync: never")
}
