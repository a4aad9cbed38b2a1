package authorizer

import (
	"context"
	"time"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// SessionLoader reads the persisted session blob on every request
type SessionLoader interface {
	Load(ctx context.Context) (domain.Session, error)
}

// SessionClearer empties the in-memory session and removes the blob
type SessionClearer interface {
	Clear(ctx context.Context) error
}

// Navigator schedules a full redirect
type Navigator interface {
	NavigateAfter(delay time.Duration, target string)
}

// Notifier user-visible error notifications
type Notifier interface {
	Error(msg string)
}

// Metrics метрики исходящих запросов
type Metrics interface {
	ObserveAPIRequest(method string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
