package guard

import "github.com/m04kA/MediCare-Portal/internal/domain"

// SessionSource readiness signal and current session
type SessionSource interface {
	Ready() <-chan struct{}
	Snapshot() domain.Session
}

// Metrics счётчик решений guard
type Metrics interface {
	IncGuardDecision(state string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
