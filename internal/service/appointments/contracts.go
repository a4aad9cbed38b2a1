package appointments

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// AppointmentClient интерфейс клиента MediCare API для записей пользователя
type AppointmentClient interface {
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
}

// AdminClient интерфейс доступа к admin-ресурсам MediCare API
type AdminClient interface {
	Resource(name string) *medicareapi.Resource
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
