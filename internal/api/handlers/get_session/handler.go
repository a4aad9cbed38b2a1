package get_session

import (
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
)

type Handler struct {
	sessions SessionSource
	logger   Logger
}

func NewHandler(sessions SessionSource, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromSession(h.sessions.Snapshot(), h.sessions.IsReady()))
}
