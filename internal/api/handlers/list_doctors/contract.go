package list_doctors

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

type CatalogService interface {
	Doctors(ctx context.Context, f domain.DoctorFilter) ([]domain.Doctor, []string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
