package initiate_payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	initiatePayment "github.com/m04kA/MediCare-Portal/internal/usecase/initiate_payment"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
)

type fakeUseCase struct {
	got  *initiatePayment.Request
	resp *initiatePayment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *initiatePayment.Request) (*initiatePayment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}/payment", h.Handle).Methods(http.MethodPost)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/appointments/a1/payment", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/appointments/a1/payment", strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OpensCheckout(t *testing.T) {
	uc := &fakeUseCase{resp: &initiatePayment.Response{
		Checkout:      domain.CheckoutOptions{Key: "rzp_test", OrderID: "order_1", Amount: 80000, Currency: "INR", AppointmentID: "a1"},
		DisplayAmount: "₹800",
	}}
	h := NewHandler(uc, false, logger.NewNop())

	rec := serve(h, `{"isTest":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "a1", uc.got.AppointmentID)
	assert.True(t, uc.got.IsTest)
	assert.Contains(t, rec.Body.String(), `"orderId":"order_1"`)
	assert.Contains(t, rec.Body.String(), `"displayAmount":"₹800"`)
}

func TestHandler_EmptyBodyAllowed(t *testing.T) {
	uc := &fakeUseCase{resp: &initiatePayment.Response{}}
	h := NewHandler(uc, false, logger.NewNop())

	rec := serve(h, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.False(t, uc.got.IsTest)
}

func TestHandler_ConfiguredTestMode(t *testing.T) {
	uc := &fakeUseCase{resp: &initiatePayment.Response{}}
	h := NewHandler(uc, true, logger.NewNop())

	rec := serve(h, `{"isTest":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.IsTest)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid input",
			err:        initiatePayment.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "order rejected",
			err: fmt.Errorf("%w: %w", initiatePayment.ErrOrderRejected,
				&medicareapi.APIError{StatusCode: 400, Message: "Appointment already paid"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Appointment already paid"}`,
		},
		{
			name:       "missing key",
			err:        initiatePayment.ErrMissingKey,
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Razorpay key not found in response"}`,
		},
		{
			name:       "internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, false, logger.NewNop())

			rec := serve(h, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
