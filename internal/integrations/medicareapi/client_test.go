package medicareapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
	"github.com/m04kA/MediCare-Portal/pkg/ptr"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", 5*time.Second, nil, logger.NewNop())
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, Credentials{Username: "alice", Password: "secret"}, creds)

		writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{
			"user":  map[string]string{"id": "u1", "username": "alice", "role": "USER"},
			"token": "tok",
		})
	})

	res, err := c.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, domain.RoleUser, res.User.Role)
}

func TestClient_LoginWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{"user": map[string]string{"id": "u1"}})
	})

	_, err := c.Login(context.Background(), Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ListDoctorsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/doctors", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "card", q.Get("search"))
		assert.Equal(t, "Cardiology", q.Get("specialization"))
		assert.Equal(t, "4.5", q.Get("minRating"))
		assert.Empty(t, q.Get("maxFee"))

		writeEnvelope(w, http.StatusOK, true, "", []map[string]interface{}{
			{"id": "d1", "name": "Dr. Heart", "consultationFee": 800, "availableSlots": []map[string]interface{}{
				{"day": "Monday", "startTime": "10:00", "endTime": "13:00", "isAvailable": true},
			}},
		})
	})

	doctors, err := c.ListDoctors(context.Background(), domain.DoctorFilter{
		Search:         " card ",
		Specialization: "Cardiology",
		MinRating:      ptr.Ptr(4.5),
	})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, 800.0, doctors[0].ConsultationFee)
	assert.True(t, doctors[0].HasAvailability())
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		success bool
		message string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnauthorized) },
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNotFound) },
		},
		{
			name:    "bad request with message",
			status:  http.StatusBadRequest,
			message: "Invalid date",
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				assert.Equal(t, "Invalid date", apiErr.Message)
			},
		},
		{
			name:   "server error without message",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, domain.GenericErrorMessage, apiErr.Message)
			},
		},
		{
			name:    "success false",
			status:  http.StatusOK,
			message: "Doctor unavailable",
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "Doctor unavailable", apiErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, tt.success, tt.message, nil)
			})

			_, err := c.GetDoctor(context.Background(), "d1")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_CreateAppointmentOmitsAbsentFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &raw))
		assert.NotContains(t, raw, "testId")
		assert.NotContains(t, raw, "notes")
		assert.NotContains(t, raw, "patientName")
		assert.Equal(t, "d1", raw["doctorId"])

		writeEnvelope(w, http.StatusCreated, true, "", map[string]interface{}{
			"id": "a1", "appointmentType": "consultation", "doctorId": "d1", "status": "pending",
		})
	})

	a, err := c.CreateAppointment(context.Background(), AppointmentPayload{
		AppointmentType: domain.AppointmentConsultation,
		DoctorID:        ptr.Ptr("d1"),
		AppointmentDate: "2026-10-19",
		AppointmentTime: "10:00",
		TotalAmount:     800,
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, domain.AppointmentPending, a.Status)
}

func TestClient_CreatePaymentOrderKeyFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/razorpay/order", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{
			"order":     map[string]interface{}{"id": "order_1", "amount": 80000, "currency": "INR", "key": "rzp_order_key"},
			"paymentId": "p1",
		})
	})

	order, err := c.CreatePaymentOrder(context.Background(), OrderRequest{AppointmentID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.OrderID)
	assert.Equal(t, int64(80000), order.Amount)
	assert.Equal(t, "rzp_order_key", order.Key)
	assert.Equal(t, "p1", order.PaymentID)
}

func TestClient_VerifyPayment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "p1", raw["paymentId"])
		assert.Equal(t, "order_1", raw["razorpay_order_id"])
		assert.Equal(t, "sig", raw["razorpay_signature"])

		writeEnvelope(w, http.StatusOK, false, "Signature mismatch", nil)
	})

	res, err := c.VerifyPayment(context.Background(), VerifyRequest{
		PaymentID:     "p1",
		PaymentResult: domain.PaymentResult{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
	})
	require.NoError(t, err)
	assert.False(t, res.Verified)
	assert.Equal(t, "Signature mismatch", res.Message)
}

func TestResource_CRUD(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeEnvelope(w, http.StatusOK, true, "", map[string]string{"id": "x1"})
	})

	res := c.Resource("admin/doctors")
	ctx := context.Background()

	_, err := res.List(ctx, nil)
	require.NoError(t, err)
	_, err = res.Get(ctx, "x1")
	require.NoError(t, err)
	created, err := res.Create(ctx, map[string]string{"name": "Dr. New"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x1"}`, string(created))
	_, err = res.Update(ctx, "x1", map[string]string{"name": "Dr. Renamed"})
	require.NoError(t, err)
	require.NoError(t, res.Delete(ctx, "x1"))

	assert.Equal(t, []string{
		"GET /api/admin/doctors",
		"GET /api/admin/doctors/x1",
		"POST /api/admin/doctors",
		"PUT /api/admin/doctors/x1",
		"DELETE /api/admin/doctors/x1",
	}, seen)
}
