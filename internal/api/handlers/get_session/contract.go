package get_session

import "github.com/m04kA/MediCare-Portal/internal/domain"

type SessionSource interface {
	Snapshot() domain.Session
	IsReady() bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
