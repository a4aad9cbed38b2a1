package catalog

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// CatalogClient интерфейс клиента MediCare API для справочников
type CatalogClient interface {
	ListDoctors(ctx context.Context, f domain.DoctorFilter) ([]domain.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*domain.Doctor, error)
	ListSpecializations(ctx context.Context) ([]string, error)
	ListTests(ctx context.Context, f domain.TestFilter) ([]domain.Test, error)
	ListTestCategories(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
