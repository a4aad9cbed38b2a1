package initiate_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	initiatePayment "github.com/m04kA/MediCare-Portal/internal/usecase/initiate_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAppointment = "appointment ID is required"
)

type Handler struct {
	useCase  InitiatePaymentUseCase
	testMode bool
	logger   Logger
}

// NewHandler testMode включает тестовый режим провайдера для всех оплат
func NewHandler(useCase InitiatePaymentUseCase, testMode bool, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		testMode: testMode,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payment
// Ошибки также попадают в уведомления (GET /notifications).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req InitiatePaymentRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /appointments/{id}/payment - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &initiatePayment.Request{
		AppointmentID: appointmentID,
		IsTest:        req.IsTest || h.testMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, initiatePayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointment)

		case errors.Is(err, initiatePayment.ErrOrderRejected):
			h.logger.Warn("POST /appointments/{id}/payment - Order rejected: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.APIMessage(err))

		case errors.Is(err, initiatePayment.ErrMissingKey):
			h.logger.Error("POST /appointments/{id}/payment - Missing provider key: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusBadGateway, initiatePayment.ErrMissingKey.Error())

		default:
			h.logger.Error("POST /appointments/{id}/payment - Failed to initiate payment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payment - Checkout opened: appointment_id=%s, order_id=%s",
		appointmentID, result.Checkout.OrderID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
