package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	authService "github.com/m04kA/MediCare-Portal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "username and password are required"
	msgInvalidCredentials = "Invalid username or password"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, authService.ErrRejected):
			h.logger.Warn("POST /auth/login - Rejected: username=%s, error=%v", req.Username, err)
			handlers.RespondBadRequest(w, handlers.APIMessage(err))

		default:
			h.logger.Error("POST /auth/login - Failed to log in: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{User: *user, IsAuthenticated: true})
}
