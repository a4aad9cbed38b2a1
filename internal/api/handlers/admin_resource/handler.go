package admin_resource

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	appointmentsService "github.com/m04kA/MediCare-Portal/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownResource    = "unknown resource"
	msgReadOnly           = "resource is read-only"
	msgNotFound           = "not found"
	msgNotLoggedIn        = "please log in"
	msgInvalidInput       = "invalid input"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/{resource}
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]

	data, err := h.service.AdminList(r.Context(), resource, r.URL.Query())
	if err != nil {
		h.respondError(w, "GET /admin/{resource}", resource, err)
		return
	}
	respondRaw(w, http.StatusOK, data)
}

// HandleGet GET /api/v1/admin/{resource}/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	data, err := h.service.AdminGet(r.Context(), vars["resource"], vars["id"])
	if err != nil {
		h.respondError(w, "GET /admin/{resource}/{id}", vars["resource"], err)
		return
	}
	respondRaw(w, http.StatusOK, data)
}

// HandleCreate POST /api/v1/admin/{resource}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]

	var body map[string]interface{}
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /admin/{resource} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	data, err := h.service.AdminCreate(r.Context(), resource, body)
	if err != nil {
		h.respondError(w, "POST /admin/{resource}", resource, err)
		return
	}

	h.logger.Info("POST /admin/{resource} - Created: resource=%s", resource)
	respondRaw(w, http.StatusCreated, data)
}

// HandleUpdate PUT /api/v1/admin/{resource}/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var body map[string]interface{}
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /admin/{resource}/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	data, err := h.service.AdminUpdate(r.Context(), vars["resource"], vars["id"], body)
	if err != nil {
		h.respondError(w, "PUT /admin/{resource}/{id}", vars["resource"], err)
		return
	}

	h.logger.Info("PUT /admin/{resource}/{id} - Updated: resource=%s, id=%s", vars["resource"], vars["id"])
	respondRaw(w, http.StatusOK, data)
}

// HandleDelete DELETE /api/v1/admin/{resource}/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.AdminDelete(r.Context(), vars["resource"], vars["id"]); err != nil {
		h.respondError(w, "DELETE /admin/{resource}/{id}", vars["resource"], err)
		return
	}

	h.logger.Info("DELETE /admin/{resource}/{id} - Deleted: resource=%s, id=%s", vars["resource"], vars["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route, resource string, err error) {
	switch {
	case errors.Is(err, appointmentsService.ErrUnknownResource):
		handlers.RespondNotFound(w, msgUnknownResource)

	case errors.Is(err, appointmentsService.ErrReadOnly):
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgReadOnly)

	case errors.Is(err, appointmentsService.ErrNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, appointmentsService.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, appointmentsService.ErrNotLoggedIn):
		handlers.RespondUnauthorized(w, msgNotLoggedIn)

	case errors.Is(err, appointmentsService.ErrRejected):
		h.logger.Warn("%s - Rejected by api: resource=%s, error=%v", route, resource, err)
		handlers.RespondBadRequest(w, handlers.APIMessage(err))

	default:
		h.logger.Error("%s - Failed: resource=%s, error=%v", route, resource, err)
		handlers.RespondInternalError(w)
	}
}

// respondRaw отдаёт data из MediCare API без повторной сериализации
func respondRaw(w http.ResponseWriter, status int, data json.RawMessage) {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
