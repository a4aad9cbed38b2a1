package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	appointmentsService "github.com/m04kA/MediCare-Portal/internal/service/appointments"
	"github.com/m04kA/MediCare-Portal/internal/service/appointments/models"
)

const (
	msgInvalidFilter = "invalid status or type filter"
	msgNotLoggedIn   = "please log in"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: status, type (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Фильтры из query параметров (опционально)
	serviceReq := &models.ListAppointmentsRequest{
		Status: optionalParam(r, "status"),
		Type:   optionalParam(r, "type"),
	}

	// Получаем записи пользователя
	result, err := h.service.ListUserAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, appointmentsService.ErrNotLoggedIn):
			handlers.RespondUnauthorized(w, msgNotLoggedIn)

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}

func optionalParam(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
