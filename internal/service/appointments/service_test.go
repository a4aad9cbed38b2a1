package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Portal/internal/service/appointments/models"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
	"github.com/m04kA/MediCare-Portal/pkg/ptr"
)

type fakeAppointments struct {
	list []domain.Appointment
	err  error
}

func (f *fakeAppointments) ListAppointments(context.Context) ([]domain.Appointment, error) {
	return f.list, f.err
}

type capturedRequest struct {
	method string
	path   string
	body   map[string]interface{}
}

func newAdminService(t *testing.T, status int) (*Service, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := capturedRequest{method: r.Method, path: r.URL.Path}
		if r.ContentLength > 0 {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req.body))
		}
		captured = append(captured, req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 400 {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Email already in use"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": map[string]string{"id": "x1"}})
	}))
	t.Cleanup(srv.Close)

	client := medicareapi.NewClient(srv.URL, 5*time.Second, nil, logger.NewNop())
	return NewService(&fakeAppointments{}, client, logger.NewNop()), &captured
}

func TestService_ListUserAppointmentsFilters(t *testing.T) {
	list := []domain.Appointment{
		{ID: "a1", AppointmentType: domain.AppointmentConsultation, Status: domain.AppointmentPending, PaymentStatus: domain.PaymentPending},
		{ID: "a2", AppointmentType: domain.AppointmentTest, Status: domain.AppointmentConfirmed, PaymentStatus: domain.PaymentPaid},
		{ID: "a3", AppointmentType: domain.AppointmentTest, Status: domain.AppointmentPending},
	}
	svc := NewService(&fakeAppointments{list: list}, nil, logger.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.ListAppointmentsRequest
		wantIDs []string
	}{
		{name: "no filter", wantIDs: []string{"a1", "a2", "a3"}},
		{name: "status", req: models.ListAppointmentsRequest{Status: ptr.Ptr("Pending")}, wantIDs: []string{"a1", "a3"}},
		{name: "type", req: models.ListAppointmentsRequest{Type: ptr.Ptr("test")}, wantIDs: []string{"a2", "a3"}},
		{name: "both", req: models.ListAppointmentsRequest{Status: ptr.Ptr("pending"), Type: ptr.Ptr("test")}, wantIDs: []string{"a3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListUserAppointments(ctx, &tt.req)
			require.NoError(t, err)

			ids := make([]string, 0, len(resp.Appointments))
			for _, a := range resp.Appointments {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	resp, err := svc.ListUserAppointments(ctx, &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Appointments[0].CanBePaid)
	assert.False(t, resp.Appointments[1].CanBePaid)
}

func TestService_ListUserAppointmentsErrors(t *testing.T) {
	ctx := context.Background()

	svc := NewService(&fakeAppointments{}, nil, logger.NewNop())
	_, err := svc.ListUserAppointments(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc = NewService(&fakeAppointments{err: medicareapi.ErrUnauthorized}, nil, logger.NewNop())
	_, err = svc.ListUserAppointments(ctx, &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	svc = NewService(&fakeAppointments{err: errors.New("boom")}, nil, logger.NewNop())
	_, err = svc.ListUserAppointments(ctx, &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListUserAppointmentsEmptyIsNotNil(t *testing.T) {
	svc := NewService(&fakeAppointments{}, nil, logger.NewNop())

	resp, err := svc.ListUserAppointments(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointments)
}

func TestService_AdminUpdateUserOmitsBlankPassword(t *testing.T) {
	svc, captured := newAdminService(t, http.StatusOK)

	_, err := svc.AdminUpdate(context.Background(), ResourceUsers, "u1", map[string]interface{}{
		"username": "alice",
		"password": "  ",
	})
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	got := (*captured)[0]
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/admin/users/u1", got.path)
	assert.Equal(t, "alice", got.body["username"])
	assert.NotContains(t, got.body, "password")
}

func TestService_AdminCreateStripsBlankAppointmentFields(t *testing.T) {
	svc, captured := newAdminService(t, http.StatusOK)

	body := map[string]interface{}{
		"appointmentType": "test",
		"testId":          "t1",
		"doctorId":        "",
		"notes":           " ",
		"patientName":     "Bob",
	}
	data, err := svc.AdminCreate(context.Background(), ResourceAppointments, body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x1"}`, string(data))

	got := (*captured)[0]
	assert.Equal(t, "/admin/appointments", got.path)
	assert.NotContains(t, got.body, "doctorId")
	assert.NotContains(t, got.body, "notes")
	assert.Equal(t, "Bob", got.body["patientName"])
	// исходное тело не изменяется
	assert.Contains(t, body, "doctorId")
}

func TestService_AdminResourceChecks(t *testing.T) {
	svc, captured := newAdminService(t, http.StatusOK)
	ctx := context.Background()

	_, err := svc.AdminList(ctx, "payments", nil)
	assert.ErrorIs(t, err, ErrUnknownResource)

	_, err = svc.AdminCreate(ctx, ResourceDashboard, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrReadOnly)

	err = svc.AdminDelete(ctx, ResourceDoctors, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, *captured)

	_, err = svc.AdminList(ctx, ResourceDashboard, url.Values{"range": {"week"}})
	require.NoError(t, err)
	require.NoError(t, svc.AdminDelete(ctx, ResourceDoctors, "d1"))

	require.Len(t, *captured, 2)
	assert.Equal(t, "/admin/dashboard", (*captured)[0].path)
	assert.Equal(t, http.MethodDelete, (*captured)[1].method)
	assert.Equal(t, "/admin/doctors/d1", (*captured)[1].path)
}

func TestService_AdminRejected(t *testing.T) {
	svc, _ := newAdminService(t, http.StatusConflict)

	_, err := svc.AdminCreate(context.Background(), ResourceUsers, map[string]interface{}{"email": "a@b.c"})
	assert.ErrorIs(t, err, ErrRejected)

	var apiErr *medicareapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already in use", apiErr.Message)
}
