package logout

import (
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout. Повторный вызов тоже 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.logger.Error("POST /auth/logout - Failed to log out: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Logged out")
	w.WriteHeader(http.StatusNoContent)
}
