package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	authService "github.com/m04kA/MediCare-Portal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "nothing to update or invalid email"
	msgNotLoggedIn        = "please log in"
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

// Handle PATCH /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, authService.ErrNotLoggedIn):
			handlers.RespondUnauthorized(w, msgNotLoggedIn)

		case errors.Is(err, authService.ErrRejected):
			h.logger.Warn("PATCH /profile - Rejected: %v", err)
			handlers.RespondBadRequest(w, handlers.APIMessage(err))

		default:
			h.logger.Error("PATCH /profile - Failed to update profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /profile - Profile updated: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
