package login

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
