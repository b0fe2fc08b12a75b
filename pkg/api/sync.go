package api

import (
	"encoding/json"
	"time"
)

// Статусы обработки элемента синхронизации на сервере
const (
	ItemStatusSuccess  = "success"
	ItemStatusConflict = "conflict"
	ItemStatusError    = "error"
)

// SyncItem представляет одну запись очереди синхронизации в wire формате
type SyncItem struct {
	CreatedAt  time.Time       `json:"created_at"`
	ID         string          `json:"id"`
	TaskID     string          `json:"task_id"`
	Operation  string          `json:"operation"`
	Data       json.RawMessage `json:"data,omitempty"`
	RetryCount int             `json:"retry_count"`
}

// SyncRequest представляет batch запрос на синхронизацию от клиента
type SyncRequest struct {
	ClientTimestamp time.Time  `json:"client_timestamp"`
	Items           []SyncItem `json:"items"`
}

// ProcessedItem представляет результат обработки одного элемента batch'а.
// ClientID ссылается на SyncItem.ID из запроса.
type ProcessedItem struct {
	ServerUpdatedAt *time.Time      `json:"server_updated_at,omitempty"` // версия записи на сервере (для client-side LWW)
	ClientID        string          `json:"client_id"`
	ServerID        string          `json:"server_id,omitempty"`
	Status          string          `json:"status"`
	Error           string          `json:"error,omitempty"`
	ResolvedData    json.RawMessage `json:"resolved_data,omitempty"` // поля записи после разрешения конфликта сервером
}

// SyncResponse представляет ответ сервера на batch синхронизацию
type SyncResponse struct {
	ProcessedItems []ProcessedItem `json:"processed_items"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
