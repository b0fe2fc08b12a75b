package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Operation константы для вида операции в очереди синхронизации
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// QueueEntry представляет одну неподтверждённую локальную мутацию.
// Запись создаётся атомарно вместе с мутацией задачи и удаляется только
// после подтверждения сервером. Форма Payload фиксирована видом операции:
// create - полный снимок Task, update - частичный TaskFields, delete - пусто.
type QueueEntry struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	Operation  string    `json:"operation"`
	LastError  string    `json:"last_error,omitempty"`
	Payload    []byte    `json:"payload,omitempty"`
	RetryCount int       `json:"retry_count"`
}

// NewCreateEntry создает запись очереди для операции create
// с полным снимком задачи в качестве payload
func NewCreateEntry(task *Task, now time.Time) (*QueueEntry, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task snapshot: %w", err)
	}

	return &QueueEntry{
		ID:        uuid.New().String(),
		TaskID:    task.ID,
		Operation: OperationCreate,
		Payload:   payload,
		CreatedAt: now,
	}, nil
}

// NewUpdateEntry создает запись очереди для операции update
// только с изменёнными полями в качестве payload
func NewUpdateEntry(taskID string, fields TaskFields, now time.Time) (*QueueEntry, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal changed fields: %w", err)
	}

	return &QueueEntry{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Operation: OperationUpdate,
		Payload:   payload,
		CreatedAt: now,
	}, nil
}

// NewDeleteEntry создает запись очереди для операции delete с пустым payload
func NewDeleteEntry(taskID string, now time.Time) *QueueEntry {
	return &QueueEntry{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Operation: OperationDelete,
		CreatedAt: now,
	}
}

// CreateSnapshot декодирует payload записи create в снимок задачи
func (e *QueueEntry) CreateSnapshot() (*Task, error) {
	if e.Operation != OperationCreate {
		return nil, fmt.Errorf("entry is not a create operation, got: %s", e.Operation)
	}

	var task Task
	if err := json.Unmarshal(e.Payload, &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task snapshot: %w", err)
	}

	return &task, nil
}

// UpdateFields декодирует payload записи update в набор изменённых полей
func (e *QueueEntry) UpdateFields() (*TaskFields, error) {
	if e.Operation != OperationUpdate {
		return nil, fmt.Errorf("entry is not an update operation, got: %s", e.Operation)
	}

	var fields TaskFields
	if err := json.Unmarshal(e.Payload, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal changed fields: %w", err)
	}

	return &fields, nil
}
