package payment_callback

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownOrder       = "no open payment for this order"
	msgOrderMismatch      = "payment result does not belong to this order"
)

type Handler struct {
	widget PaymentWidget
	logger Logger
}

func NewHandler(widget PaymentWidget, logger Logger) *Handler {
	return &Handler{
		widget: widget,
		logger: logger,
	}
}

// HandleComplete POST /api/v1/payments/{orderId}/complete
// Тело - ответ провайдера (razorpay_order_id, razorpay_payment_id, razorpay_signature).
// К моменту ответа итог проверки подписи уже лежит в уведомлениях.
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var result domain.PaymentResult
	if err := handlers.DecodeJSON(r, &result); err != nil {
		h.logger.Warn("POST /payments/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Проверка подписи выполняется до ответа; обрыв соединения клиентом её не прерывает
	if err := h.widget.Complete(context.WithoutCancel(r.Context()), orderID, result); err != nil {
		h.respondError(w, "POST /payments/{id}/complete", orderID, err)
		return
	}

	h.logger.Info("POST /payments/{id}/complete - Payment result accepted: order_id=%s", orderID)
	w.WriteHeader(http.StatusAccepted)
}

// HandleDismiss POST /api/v1/payments/{orderId}/dismiss
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if err := h.widget.Dismiss(r.Context(), orderID); err != nil {
		h.respondError(w, "POST /payments/{id}/dismiss", orderID, err)
		return
	}

	h.logger.Info("POST /payments/{id}/dismiss - Payment dismissed: order_id=%s", orderID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route, orderID string, err error) {
	switch {
	case errors.Is(err, payment.ErrUnknownOrder):
		h.logger.Warn("%s - Unknown order: order_id=%s", route, orderID)
		handlers.RespondNotFound(w, msgUnknownOrder)

	case errors.Is(err, payment.ErrOrderMismatch):
		h.logger.Warn("%s - Order mismatch: order_id=%s", route, orderID)
		handlers.RespondBadRequest(w, msgOrderMismatch)

	default:
		h.logger.Error("%s - Failed: order_id=%s, error=%v", route, orderID, err)
		handlers.RespondInternalError(w)
	}
}
