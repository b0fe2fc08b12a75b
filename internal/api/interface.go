package api

import (
	"context"

	"github.com/akarpov/taskvault/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines interface for the sync server API client
type ClientAPI interface {
	// SyncBatch отправляет batch записей очереди на сервер
	SyncBatch(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) error
}

// Ensure Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
