package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, "client-1", 30*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.Equal(t, "client-1", client.clientID)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_SyncBatch проверяет успешную отправку batch'а
func TestClient_SyncBatch(t *testing.T) {
	now := time.Now().UTC()

	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/sync", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "client-1", r.Header.Get("X-Client-ID"))

		// Декодируем запрос
		var req api.SyncRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		require.Len(t, req.Items, 1)
		assert.Equal(t, "entry-1", req.Items[0].ID)
		assert.Equal(t, "task-1", req.Items[0].TaskID)
		assert.Equal(t, models.OperationCreate, req.Items[0].Operation)
		assert.False(t, req.ClientTimestamp.IsZero())

		// Возвращаем успешный ответ
		w.WriteHeader(http.StatusOK)
		resp := api.SyncResponse{
			ProcessedItems: []api.ProcessedItem{
				{ClientID: "entry-1", ServerID: "srv-1", Status: api.ItemStatusSuccess},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "client-1", 30*time.Second)

	ctx := context.Background()
	req := api.SyncRequest{
		ClientTimestamp: now,
		Items: []api.SyncItem{
			{
				ID:        "entry-1",
				TaskID:    "task-1",
				Operation: models.OperationCreate,
				Data:      json.RawMessage(`{"id":"task-1","title":"buy milk"}`),
				CreatedAt: now,
			},
		},
	}

	resp, err := client.SyncBatch(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.ProcessedItems, 1)
	assert.Equal(t, "entry-1", resp.ProcessedItems[0].ClientID)
	assert.Equal(t, "srv-1", resp.ProcessedItems[0].ServerID)
	assert.Equal(t, api.ItemStatusSuccess, resp.ProcessedItems[0].Status)
}

// TestClient_SyncBatch_ServerError проверяет обработку ошибки сервера
func TestClient_SyncBatch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "database unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "client-1", 30*time.Second)

	_, err := client.SyncBatch(context.Background(), api.SyncRequest{ClientTimestamp: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

// TestClient_Health проверяет health probe
func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "client-1", 30*time.Second)

	assert.NoError(t, client.Health(context.Background()))
}

// TestClient_Health_Unavailable проверяет health probe недоступного сервера
func TestClient_Health_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	client := NewClient(server.URL, "client-1", 30*time.Second)
	assert.Error(t, client.Health(context.Background()))

	// Сервер выключен - transport error
	server.Close()
	assert.Error(t, client.Health(context.Background()))
}

// TestClient_Health_Timeout проверяет что probe ограничен таймаутом контекста
func TestClient_Health_Timeout(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer func() {
		close(blocked)
		server.Close()
	}()

	client := NewClient(server.URL, "client-1", 30*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Health(ctx)
	require.Error(t, err)
}
