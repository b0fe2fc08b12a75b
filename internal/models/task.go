package models

import "time"

// SyncStatus константы для статуса синхронизации задачи
const (
	SyncStatusPending = "pending" // есть локальные изменения, не подтверждённые сервером
	SyncStatusSynced  = "synced"  // локальное состояние подтверждено сервером
	SyncStatusError   = "error"   // последняя попытка синхронизации завершилась ошибкой
)

// Task представляет задачу в локальном хранилище.
// ID генерируется клиентом и стабилен; ServerID назначается сервером
// после первой успешной синхронизации.
type Task struct {
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`     // UpdatedAt монотонно не убывает, выставляется при каждой локальной мутации
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	ID           string     `json:"id"`
	ServerID     string     `json:"server_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	SyncStatus   string     `json:"sync_status"`
	Completed    bool       `json:"completed"`
	IsDeleted    bool       `json:"is_deleted"` // soft delete, запись физически не удаляется
}

// Clone создает глубокую копию задачи
func (t *Task) Clone() *Task {
	clone := *t
	if t.LastSyncedAt != nil {
		ts := *t.LastSyncedAt
		clone.LastSyncedAt = &ts
	}
	return &clone
}

// TaskFields описывает частичное изменение бизнес-полей задачи.
// nil означает "поле не меняется".
type TaskFields struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsEmpty возвращает true если ни одно поле не задано
func (f *TaskFields) IsEmpty() bool {
	return f.Title == nil && f.Description == nil && f.Completed == nil
}

// ApplyTo накладывает заданные поля на задачу
func (f *TaskFields) ApplyTo(t *Task) {
	if f.Title != nil {
		t.Title = *f.Title
	}
	if f.Description != nil {
		t.Description = *f.Description
	}
	if f.Completed != nil {
		t.Completed = *f.Completed
	}
}
