package storage

import "errors"

// Common storage errors
var (
	// ErrTaskNotFound indicates that task was not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrEntryNotFound indicates that sync queue entry was not found
	ErrEntryNotFound = errors.New("sync queue entry not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
