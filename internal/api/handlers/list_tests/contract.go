package list_tests

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

type CatalogService interface {
	Tests(ctx context.Context, f domain.TestFilter) ([]domain.Test, []string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
