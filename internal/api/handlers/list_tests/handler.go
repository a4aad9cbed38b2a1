package list_tests

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	catalogService "github.com/m04kA/MediCare-Portal/internal/service/catalog"
)

const (
	msgInvalidFilter = "invalid filter: prices must not be negative, minPrice must not exceed maxPrice"
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

// Handle GET /api/v1/tests
// Query params: search, category, minPrice, maxPrice (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToDomainFilter(r)
	if err != nil {
		h.logger.Warn("GET /tests - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	tests, categories, err := h.service.Tests(r.Context(), filter)
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidFilter) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /tests - Failed to list tests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &TestsResponse{Tests: tests, Categories: categories})
}
