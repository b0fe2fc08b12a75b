package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the time of the last successful sync
	SaveLastSyncTime(ctx context.Context, ts time.Time) error

	// GetLastSyncTime retrieves the time of the last successful sync.
	// Returns zero time if no sync has been performed yet.
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// GetClientID returns the persistent client identifier,
	// generating and storing a new one on first call
	GetClientID(ctx context.Context) (string, error)
}
