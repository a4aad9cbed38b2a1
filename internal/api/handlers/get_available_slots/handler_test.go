package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	getAvailableSlots "github.com/m04kA/MediCare-Portal/internal/usecase/get_available_slots"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
)

type fakeDoctors struct {
	doctors map[string]*domain.Doctor
}

func (f fakeDoctors) GetDoctor(_ context.Context, id string) (*domain.Doctor, error) {
	if d, ok := f.doctors[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: doctor %s", medicareapi.ErrNotFound, id)
}

func newRouter() *mux.Router {
	doctors := fakeDoctors{doctors: map[string]*domain.Doctor{
		"d1": {ID: "d1", AvailableSlots: []domain.AvailabilityWindow{
			{Day: "Monday", StartTime: "10:00", EndTime: "13:00", IsAvailable: true},
		}},
	}}
	h := NewHandler(getAvailableSlots.NewUseCase(doctors, logger.NewNop()), logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/doctors/{doctorId}/slots", h.Handle).Methods(http.MethodGet)
	r.HandleFunc("/slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	// дата заведомо в будущем, чтобы текущий час не отсекал слоты
	monday := nextWeekday(time.Now(), time.Monday).Format(domain.DateFormat)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "doctor window",
			url:        "/doctors/d1/slots?date=" + monday,
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"` + monday + `","doctorId":"d1","fallback":false,"slots":["10:00","11:00","12:00"]}`,
		},
		{
			name:       "no date",
			url:        "/doctors/d1/slots",
			wantStatus: http.StatusOK,
			wantBody:   `{"date":null,"doctorId":"d1","fallback":false,"slots":[]}`,
		},
		{
			name:       "invalid date",
			url:        "/doctors/d1/slots?date=19.10.2026",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown doctor",
			url:        "/doctors/d9/slots?date=" + monday,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_FallbackRange(t *testing.T) {
	monday := nextWeekday(time.Now(), time.Monday).Format(domain.DateFormat)

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slots?date="+monday, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got AvailableSlotsResponse
	require.NoError(t, jsonDecode(rec, &got))
	assert.True(t, got.Fallback)
	assert.Len(t, got.Slots, 12)
	assert.Equal(t, "09:00", got.Slots[0])
	assert.Equal(t, "20:00", got.Slots[11])
}

// nextWeekday ближайший день недели строго после from
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func jsonDecode(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(rec.Body).Decode(v)
}
