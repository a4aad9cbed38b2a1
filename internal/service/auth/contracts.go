package auth

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// SessionStore хранилище текущей сессии
type SessionStore interface {
	Login(ctx context.Context, user domain.User, token string) error
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, patch domain.UserPatch) error
	Snapshot() domain.Session
}

// AuthClient интерфейс клиента MediCare API для аутентификации
type AuthClient interface {
	Login(ctx context.Context, creds medicareapi.Credentials) (*medicareapi.AuthResult, error)
	Register(ctx context.Context, reg medicareapi.Registration) (*medicareapi.AuthResult, error)
	UpdateProfile(ctx context.Context, upd medicareapi.ProfileUpdate) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
