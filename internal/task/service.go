package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/storage"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для сервиса задач.
// Каждая мутация (Create/Update/Delete) пишет задачу и ровно одну запись
// очереди синхронизации в одной транзакции - частичное применение невозможно.
type Service interface {
	// Create persists a new task and enqueues a create mutation.
	// Assigns a new identifier when task.ID is empty.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// Update merges the given fields into a live task and enqueues
	// an update mutation carrying only the changed fields.
	// Returns storage.ErrTaskNotFound if no live task exists.
	Update(ctx context.Context, id string, fields models.TaskFields) (*models.Task, error)

	// Delete soft-deletes a live task and enqueues a delete mutation.
	// Returns storage.ErrTaskNotFound if no live task exists.
	Delete(ctx context.Context, id string) error

	// Get returns the task iff it exists and is not soft-deleted
	Get(ctx context.Context, id string) (*models.Task, error)

	// List returns all non-deleted tasks
	List(ctx context.Context) ([]*models.Task, error)

	// ListPendingSync returns tasks awaiting synchronization
	// (sync status pending or error). Used for status reporting;
	// the sync orchestrator reads the queue, not this list.
	ListPendingSync(ctx context.Context) ([]*models.Task, error)
}

// service handles local task mutations and queue production
type service struct {
	tasks storage.TaskStorage
}

// NewService creates a new task service
func NewService(tasks storage.TaskStorage) Service {
	return &service{
		tasks: tasks,
	}
}

// Create persists a new task and enqueues a create mutation
func (s *service) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	// Генерируем ID если не задан
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	now := time.Now()
	task.IsDeleted = false
	task.SyncStatus = models.SyncStatusPending
	task.ServerID = ""
	task.LastSyncedAt = nil
	task.CreatedAt = now
	task.UpdatedAt = now

	// Запись очереди несёт полный снимок задачи
	entry, err := models.NewCreateEntry(task, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build create entry: %w", err)
	}

	if err := s.tasks.SaveTaskWithEntry(ctx, task, entry); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return task, nil
}

// Update merges fields into an existing live task and enqueues an update mutation
func (s *service) Update(ctx context.Context, id string, fields models.TaskFields) (*models.Task, error) {
	task, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fields.ApplyTo(task)
	task.UpdatedAt = now
	task.SyncStatus = models.SyncStatusPending

	// Запись очереди несёт только изменённые поля, не полный снимок
	entry, err := models.NewUpdateEntry(id, fields, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build update entry: %w", err)
	}

	if err := s.tasks.SaveTaskWithEntry(ctx, task, entry); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return task, nil
}

// Delete soft-deletes a live task and enqueues a delete mutation
func (s *service) Delete(ctx context.Context, id string) error {
	task, err := s.getLive(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	task.IsDeleted = true
	task.UpdatedAt = now
	task.SyncStatus = models.SyncStatusPending

	entry := models.NewDeleteEntry(id, now)

	if err := s.tasks.SaveTaskWithEntry(ctx, task, entry); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// Get returns the task iff it exists and is not soft-deleted
func (s *service) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.getLive(ctx, id)
}

// List returns all non-deleted tasks
func (s *service) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.tasks.ListActiveTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListPendingSync returns tasks awaiting synchronization
func (s *service) ListPendingSync(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.tasks.ListUnsyncedTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsynced tasks: %w", err)
	}
	return tasks, nil
}

// getLive возвращает живую (не удалённую) задачу
func (s *service) getLive(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	// Soft-deleted задачи для внешнего мира не существуют
	if task.IsDeleted {
		return nil, storage.ErrTaskNotFound
	}

	return task, nil
}
