package get_notifications

import (
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
)

type Handler struct {
	notifier Notifier
	logger   Logger
}

func NewHandler(notifier Notifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle GET /api/v1/notifications. Возвращает накопленные уведомления и очищает очередь.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.notifier.Drain())
}
