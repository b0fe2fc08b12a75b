package config

import (
	"fmt"
	"time"
)

// Conflict resolver strategies
const (
	ResolverPeer     = "peer"      // сервер - авторитет, конфликт без resolved_data это ошибка
	ResolverLocalLWW = "local-lww" // клиентский last-write-wins fallback по updated_at
)

// Defaults
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultBatchSize      = 10
	DefaultMaxRetries     = 3
	DefaultHealthTimeout  = 5 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Config содержит настройки синхронизации. Заполняется вызывающей стороной
// (флаги процесса) при старте и дальше не меняется - сервисы никогда
// не читают окружение сами.
type Config struct {
	BaseURL        string        // адрес сервера синхронизации
	Resolver       string        // стратегия разрешения конфликтов
	BatchSize      int           // размер batch'а при отправке очереди
	MaxRetries     int           // максимум повторов до перманентной ошибки
	HealthTimeout  time.Duration // таймаут health probe
	RequestTimeout time.Duration // таймаут batch запроса
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Resolver:       ResolverPeer,
		BatchSize:      DefaultBatchSize,
		MaxRetries:     DefaultMaxRetries,
		HealthTimeout:  DefaultHealthTimeout,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Validate проверяет корректность конфигурации
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries)
	}
	if c.HealthTimeout <= 0 {
		return fmt.Errorf("health timeout must be positive, got %s", c.HealthTimeout)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.Resolver != ResolverPeer && c.Resolver != ResolverLocalLWW {
		return fmt.Errorf("unknown conflict resolver: %s", c.Resolver)
	}
	return nil
}
