package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	httpClient "github.com/akarpov/taskvault/internal/api"
	"github.com/akarpov/taskvault/internal/config"
	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/internal/storage"
	"github.com/akarpov/taskvault/pkg/api"
)

// ErrSyncInProgress возвращается когда синхронизация уже запущена
var ErrSyncInProgress = errors.New("sync is already in progress")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс оркестратора синхронизации
type Service interface {
	// Sync выполняет один прогон синхронизации: выгружает очередь
	// батчами на сервер и применяет результаты.
	// Возвращает ErrSyncInProgress если прогон уже идёт.
	Sync(ctx context.Context) (*SyncResult, error)

	// CheckConnectivity проверяет доступность сервера.
	// Никогда не возвращает ошибку - только true/false.
	CheckConnectivity(ctx context.Context) bool

	// GetStatus возвращает текущее состояние синхронизации
	GetStatus(ctx context.Context) (*Status, error)
}

// SyncResult contains sync run results
type SyncResult struct {
	Errors      []SyncError // детали каждой неуспешной записи
	SyncedCount int         // количество подтверждённых записей
	FailedCount int         // количество неуспешных записей
	Success     bool        // true если ни одна запись не провалилась
}

// SyncError describes one failed queue entry
type SyncError struct {
	Time      time.Time
	TaskID    string
	Operation string
	Message   string
}

// Status describes the current synchronization state
type Status struct {
	LastSyncedAt time.Time // время последней успешной синхронизации (zero если не было)
	PendingCount int       // записей в очереди
	Online       bool      // результат connectivity probe
}

// service handles synchronization between the local store and the server
type service struct {
	apiClient httpClient.ClientAPI
	tasks     storage.TaskStorage
	queue     storage.QueueStorage
	metadata  storage.MetadataStorage
	resolver  ConflictResolver
	logger    *slog.Logger
	cfg       config.Config

	// mu защищает прогон синхронизации: одновременно выполняется максимум один
	mu sync.Mutex
}

// NewService creates a new sync orchestrator
func NewService(
	cfg config.Config,
	apiClient httpClient.ClientAPI,
	tasks storage.TaskStorage,
	queue storage.QueueStorage,
	metadata storage.MetadataStorage,
	logger *slog.Logger,
) Service {
	return &service{
		cfg:       cfg,
		apiClient: apiClient,
		tasks:     tasks,
		queue:     queue,
		metadata:  metadata,
		resolver:  newResolver(cfg.Resolver),
		logger:    logger,
	}
}

// Sync performs one synchronization run
// 1. Reads the queue ordered by creation time (per-task causal order)
// 2. Partitions entries into fixed-size batches
// 3. Sends batches sequentially and dispatches per-item results
// 4. Aggregates counts and errors across all batches
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	// Конкурирующий вызов не блокируется, а сразу отклоняется
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	entries, err := s.queue.ListEntriesOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read sync queue: %w", err)
	}

	// Записи, исчерпавшие лимит повторов, не отправляются повторно:
	// их задачи закреплены в статусе error до внешнего resync
	pending := make([]*models.QueueEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.RetryCount <= s.cfg.MaxRetries {
			pending = append(pending, entry)
		}
	}

	s.logger.Info("Starting synchronization",
		"entries", len(pending),
		"batch_size", s.cfg.BatchSize)

	// Сколько записей каждой задачи осталось в этом прогоне: задача
	// помечается synced только когда подтверждена её последняя запись
	remaining := make(map[string]int, len(pending))
	for _, entry := range pending {
		remaining[entry.TaskID]++
	}

	result := &SyncResult{}

	// Батчи отправляются строго последовательно
	for start := 0; start < len(pending); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(pending))
		s.processBatch(ctx, pending[start:end], remaining, result)
	}

	result.Success = result.FailedCount == 0

	if result.SyncedCount > 0 {
		if err := s.metadata.SaveLastSyncTime(ctx, time.Now()); err != nil {
			// Не прерываем синхронизацию из-за ошибки сохранения метаданных
			s.logger.Warn("Failed to save last sync time", "error", err)
		}
	}

	s.logger.Info("Synchronization completed",
		"synced", result.SyncedCount,
		"failed", result.FailedCount,
		"success", result.Success)

	return result, nil
}

// processBatch отправляет один batch и применяет пер-элементные результаты
func (s *service) processBatch(ctx context.Context, batch []*models.QueueEntry, remaining map[string]int, result *SyncResult) {
	items := make([]api.SyncItem, 0, len(batch))
	for _, entry := range batch {
		items = append(items, api.SyncItem{
			ID:         entry.ID,
			TaskID:     entry.TaskID,
			Operation:  entry.Operation,
			Data:       json.RawMessage(entry.Payload),
			CreatedAt:  entry.CreatedAt,
			RetryCount: entry.RetryCount,
		})
	}

	req := api.SyncRequest{
		Items:           items,
		ClientTimestamp: time.Now(),
	}

	resp, err := s.apiClient.SyncBatch(ctx, req)
	if err != nil {
		// Транспортная ошибка: весь batch неуспешен, но прогон продолжается
		s.failBatch(ctx, batch, err, result)
		return
	}

	processed := make(map[string]*api.ProcessedItem, len(resp.ProcessedItems))
	for i := range resp.ProcessedItems {
		processed[resp.ProcessedItems[i].ClientID] = &resp.ProcessedItems[i]
	}

	for _, entry := range batch {
		item, ok := processed[entry.ID]
		if !ok {
			s.recordItemError(ctx, entry, "server returned no result for entry", result)
			continue
		}

		switch item.Status {
		case api.ItemStatusSuccess:
			s.applyItemSuccess(ctx, entry, item, item.ResolvedData, remaining, result)
		case api.ItemStatusConflict:
			s.applyConflict(ctx, entry, item, remaining, result)
		default:
			msg := item.Error
			if msg == "" {
				msg = fmt.Sprintf("server rejected entry with status %q", item.Status)
			}
			s.recordItemError(ctx, entry, msg, result)
		}
	}
}

// applyItemSuccess подтверждает запись: обновляет задачу и удаляет запись
// очереди в одной транзакции. resolved - поля от сервера (может быть пустым).
func (s *service) applyItemSuccess(ctx context.Context, entry *models.QueueEntry, item *api.ProcessedItem, resolved json.RawMessage, remaining map[string]int, result *SyncResult) {
	task, err := s.tasks.GetTask(ctx, entry.TaskID)
	if err != nil {
		s.recordItemError(ctx, entry, fmt.Sprintf("failed to load task: %v", err), result)
		return
	}

	if len(resolved) > 0 {
		var fields models.TaskFields
		if err := json.Unmarshal(resolved, &fields); err != nil {
			s.recordItemError(ctx, entry, fmt.Sprintf("failed to decode resolved data: %v", err), result)
			return
		}
		fields.ApplyTo(task)
	}

	if item.ServerID != "" {
		task.ServerID = item.ServerID
	}

	now := time.Now()
	task.LastSyncedAt = &now

	// Задача синхронизирована только когда подтверждена её последняя
	// запись очереди; до этого она остаётся pending
	remaining[entry.TaskID]--
	if remaining[entry.TaskID] <= 0 {
		task.SyncStatus = models.SyncStatusSynced
	} else {
		task.SyncStatus = models.SyncStatusPending
	}

	if err := s.tasks.ConfirmTaskSynced(ctx, task, entry.ID); err != nil {
		s.recordItemError(ctx, entry, fmt.Sprintf("failed to confirm task: %v", err), result)
		return
	}

	s.logger.Debug("Entry confirmed",
		"entry_id", entry.ID,
		"task_id", entry.TaskID,
		"operation", entry.Operation)

	result.SyncedCount++
}

// applyConflict разрешает конфликтный элемент согласно выбранной стратегии
func (s *service) applyConflict(ctx context.Context, entry *models.QueueEntry, item *api.ProcessedItem, remaining map[string]int, result *SyncResult) {
	task, err := s.tasks.GetTask(ctx, entry.TaskID)
	if err != nil {
		s.recordItemError(ctx, entry, fmt.Sprintf("failed to load task: %v", err), result)
		return
	}

	switch s.resolver.Resolve(task, item) {
	case DecisionApplyResolved:
		s.logger.Debug("Conflict resolved by server", "task_id", entry.TaskID)
		s.applyItemSuccess(ctx, entry, item, item.ResolvedData, remaining, result)
	case DecisionKeepLocal:
		// Локальная копия новее - оставляем её поля как есть
		s.logger.Debug("Conflict resolved locally (local wins)", "task_id", entry.TaskID)
		s.applyItemSuccess(ctx, entry, item, nil, remaining, result)
	default:
		msg := item.Error
		if msg == "" {
			msg = "conflict without resolution from server"
		}
		s.recordItemError(ctx, entry, msg, result)
	}
}

// recordItemError фиксирует пер-элементную ошибку: задача помечается error,
// запись очереди остаётся на месте
func (s *service) recordItemError(ctx context.Context, entry *models.QueueEntry, msg string, result *SyncResult) {
	if err := s.tasks.MarkTaskSyncError(ctx, entry.TaskID); err != nil {
		s.logger.Warn("Failed to mark task error",
			"task_id", entry.TaskID,
			"error", err)
	}

	s.logger.Warn("Entry failed",
		"entry_id", entry.ID,
		"task_id", entry.TaskID,
		"operation", entry.Operation,
		"message", msg)

	result.FailedCount++
	result.Errors = append(result.Errors, SyncError{
		Time:      time.Now(),
		TaskID:    entry.TaskID,
		Operation: entry.Operation,
		Message:   msg,
	})
}

// failBatch обрабатывает транспортную ошибку отправки: каждой записи batch'а
// инкрементируется счётчик повторов, при превышении лимита задача
// перманентно помечается error
func (s *service) failBatch(ctx context.Context, batch []*models.QueueEntry, sendErr error, result *SyncResult) {
	s.logger.Warn("Batch send failed",
		"entries", len(batch),
		"error", sendErr)

	for _, entry := range batch {
		newCount, err := s.queue.IncrementRetry(ctx, entry.ID, sendErr.Error())
		if err != nil {
			s.logger.Warn("Failed to increment retry count",
				"entry_id", entry.ID,
				"error", err)
		} else if newCount > s.cfg.MaxRetries {
			// Лимит исчерпан: задача закрепляется в error и запись
			// больше не будет отправляться автоматически
			if err := s.tasks.MarkTaskSyncError(ctx, entry.TaskID); err != nil {
				s.logger.Warn("Failed to mark task error",
					"task_id", entry.TaskID,
					"error", err)
			}
			s.logger.Warn("Entry exceeded retry limit",
				"entry_id", entry.ID,
				"task_id", entry.TaskID,
				"retry_count", newCount)
		}

		result.FailedCount++
		result.Errors = append(result.Errors, SyncError{
			Time:      time.Now(),
			TaskID:    entry.TaskID,
			Operation: entry.Operation,
			Message:   sendErr.Error(),
		})
	}
}

// CheckConnectivity проверяет доступность сервера в пределах таймаута
func (s *service) CheckConnectivity(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.HealthTimeout)
	defer cancel()

	if err := s.apiClient.Health(ctx); err != nil {
		s.logger.Debug("Connectivity probe failed", "error", err)
		return false
	}

	return true
}

// GetStatus возвращает текущее состояние синхронизации
func (s *service) GetStatus(ctx context.Context) (*Status, error) {
	pending, err := s.queue.CountEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending entries: %w", err)
	}

	lastSyncedAt, err := s.metadata.GetLastSyncTime(ctx)
	if err != nil {
		s.logger.Warn("Failed to get last sync time", "error", err)
		lastSyncedAt = time.Time{}
	}

	return &Status{
		PendingCount: pending,
		LastSyncedAt: lastSyncedAt,
		Online:       s.CheckConnectivity(ctx),
	}, nil
}
