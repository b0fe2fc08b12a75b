package sync

import (
	"time"

	"github.com/akarpov/taskvault/internal/config"
	"github.com/akarpov/taskvault/internal/models"
	"github.com/akarpov/taskvault/pkg/api"
)

// ConflictDecision описывает исход разрешения конфликта
type ConflictDecision int

const (
	// DecisionUnresolved - конфликт не разрешён, элемент считается ошибкой
	DecisionUnresolved ConflictDecision = iota
	// DecisionApplyResolved - применить поля, присланные сервером в resolved_data
	DecisionApplyResolved
	// DecisionKeepLocal - оставить локальную версию задачи
	DecisionKeepLocal
)

// ConflictResolver решает, что делать с элементом batch'а в статусе conflict
type ConflictResolver interface {
	Resolve(local *models.Task, item *api.ProcessedItem) ConflictDecision
}

// PeerResolver считает сервер авторитетом разрешения конфликтов:
// конфликт принимается только вместе с resolved_data
type PeerResolver struct{}

// Resolve применяет серверное разрешение или отклоняет элемент
func (PeerResolver) Resolve(local *models.Task, item *api.ProcessedItem) ConflictDecision {
	if len(item.ResolvedData) > 0 {
		return DecisionApplyResolved
	}
	return DecisionUnresolved
}

// LocalLWWResolver дополняет серверное разрешение клиентским
// last-write-wins по updated_at, когда сервер прислал версию записи,
// но не прислал разрешение
type LocalLWWResolver struct{}

// Resolve применяет серверное разрешение, либо сравнивает времена изменения
func (LocalLWWResolver) Resolve(local *models.Task, item *api.ProcessedItem) ConflictDecision {
	if len(item.ResolvedData) > 0 {
		return DecisionApplyResolved
	}
	if item.ServerUpdatedAt != nil && localWins(local.UpdatedAt, *item.ServerUpdatedAt) {
		return DecisionKeepLocal
	}
	return DecisionUnresolved
}

// localWins reports whether the local copy wins under last-write-wins.
// При равных временах выигрывает локальная копия - правило тотально
// и детерминировано.
func localWins(localUpdatedAt, serverUpdatedAt time.Time) bool {
	return !localUpdatedAt.Before(serverUpdatedAt)
}

// newResolver возвращает стратегию разрешения конфликтов по имени из конфигурации
func newResolver(name string) ConflictResolver {
	if name == config.ResolverLocalLWW {
		return LocalLWWResolver{}
	}
	return PeerResolver{}
}
