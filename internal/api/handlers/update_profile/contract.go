package update_profile

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

type AuthService interface {
	UpdateProfile(ctx context.Context, patch domain.UserPatch) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
