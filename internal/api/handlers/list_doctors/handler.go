package list_doctors

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	catalogService "github.com/m04kA/MediCare-Portal/internal/service/catalog"
)

const (
	msgInvalidFilter = "invalid filter: minRating must be 0..5, maxFee must not be negative"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors
// Query params: search, specialization, minRating, maxFee (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToDomainFilter(r)
	if err != nil {
		h.logger.Warn("GET /doctors - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	doctors, specializations, err := h.service.Doctors(r.Context(), filter)
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidFilter) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &DoctorsResponse{Doctors: doctors, Specializations: specializations})
}
