package create_appointment

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// SessionReader текущая сессия
type SessionReader interface {
	Snapshot() domain.Session
}

// CatalogClient справочники врачей и анализов
type CatalogClient interface {
	ListDoctors(ctx context.Context, f domain.DoctorFilter) ([]domain.Doctor, error)
	ListTests(ctx context.Context, f domain.TestFilter) ([]domain.Test, error)
}

// AppointmentClient отправка записи в API
type AppointmentClient interface {
	CreateAppointment(ctx context.Context, p medicareapi.AppointmentPayload) (*domain.Appointment, error)
	CreateAdminAppointment(ctx context.Context, p medicareapi.AppointmentPayload) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
