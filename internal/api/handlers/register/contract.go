package register

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
