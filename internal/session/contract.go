package session

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// StateStorage explicit save/load boundary of the session blob
type StateStorage interface {
	Save(ctx context.Context, s domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// Metrics счётчик событий сессии
type Metrics interface {
	IncSessionEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
