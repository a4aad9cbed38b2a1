package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	authService "github.com/m04kA/MediCare-Portal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "username, a valid email and password are required"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, loggedIn, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, authService.ErrRejected):
			h.logger.Warn("POST /auth/register - Rejected: username=%s, error=%v", req.Username, err)
			handlers.RespondBadRequest(w, handlers.APIMessage(err))

		default:
			h.logger.Error("POST /auth/register - Failed to register: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registered: user_id=%s, logged_in=%t", user.ID, loggedIn)
	handlers.RespondJSON(w, http.StatusCreated, &RegisterResponse{User: *user, IsAuthenticated: loggedIn})
}
