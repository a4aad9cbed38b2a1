package create_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	createAppointment "github.com/m04kA/MediCare-Portal/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotLoggedIn        = "Please login to book an appointment"
	msgForbidden          = "admin role required"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.execute(w, r, "POST /appointments", req.ToUseCaseRequest())
}

// HandleAdmin POST /api/v1/admin/appointments
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	var req AdminAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.execute(w, r, "POST /admin/appointments", req.ToUseCaseRequest())
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, useCaseReq *createAppointment.Request) {
	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrValidation):
			h.logger.Warn("%s - Validation failed: %v", route, err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createAppointment.ErrNotLoggedIn):
			h.logger.Warn("%s - Not logged in", route)
			handlers.RespondUnauthorized(w, msgNotLoggedIn)

		case errors.Is(err, createAppointment.ErrForbidden):
			h.logger.Warn("%s - Forbidden", route)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAppointment.ErrRejected):
			h.logger.Warn("%s - Rejected by api: %v", route, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.APIMessage(err))

		default:
			h.logger.Error("%s - Failed to create appointment: type=%s, error=%v", route, useCaseReq.Draft.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("%s - Appointment created successfully: appointment_id=%s, type=%s",
		route, result.Appointment.ID, result.Appointment.AppointmentType)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// validationMessage текст ошибки без префикса пакета
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation failed: "); i >= 0 {
		return msg[i+len("validation failed: "):]
	}
	return msg
}
