package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MediCare-Portal/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequest = "invalid doctor ID or date"
	msgDoctorNotFound = "doctor not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/slots и GET /api/v1/slots (без врача - диапазон по умолчанию)
// Query params: date (YYYY-MM-DD, optional - без даты слотов нет)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	dateStr := r.URL.Query().Get("date")

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(doctorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid request: doctor_id=%q, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /slots - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("GET /slots - Failed to get slots: doctor_id=%q, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved successfully: doctor_id=%q, slots_count=%d", doctorID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
