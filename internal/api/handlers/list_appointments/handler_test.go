package list_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentsService "github.com/m04kA/MediCare-Portal/internal/service/appointments"
	"github.com/m04kA/MediCare-Portal/internal/service/appointments/models"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
)

type fakeService struct {
	got  *models.ListAppointmentsRequest
	resp *models.AppointmentListResponse
	err  error
}

func (f *fakeService) ListUserAppointments(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandler_PassesFilters(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}}
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=pending", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	require.NotNil(t, svc.got)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "pending", *svc.got.Status)
	assert.Nil(t, svc.got.Type)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid filter", appointmentsService.ErrInvalidInput, http.StatusBadRequest},
		{"not logged in", appointmentsService.ErrNotLoggedIn, http.StatusUnauthorized},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
