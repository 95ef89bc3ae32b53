package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-functions/internal/usecase"
	"travel-functions/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingHandler() *BookingHandler {
	svc := usecase.NewBookingService(usecase.BookingConfig{
		Runtime: utils.RuntimeContext{Env: "undefined", RunDate: "undefined"},
	}, zap.NewNop())
	return NewBookingHandler(svc, zap.NewNop())
}

func TestCreateBooking_HTTP(t *testing.T) {
	h := newTestBookingHandler()

	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "get is rejected",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method not allowed; use POST",
		},
		{
			name:       "empty body",
			method:     http.MethodPost,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid or missing JSON",
		},
		{
			name:       "missing passengers",
			method:     http.MethodPost,
			body:       `{"customer_name":"Alice","travel_date":"2099-01-01","origin":"BOM","destination":"DEL"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing fields: ['passengers']",
		},
		{
			name:       "bad date",
			method:     http.MethodPost,
			body:       `{"customer_name":"Alice","travel_date":"01/01/2099","origin":"BOM","destination":"DEL","passengers":2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid date format; use YYYY-MM-DD",
		},
		{
			name:       "past date",
			method:     http.MethodPost,
			body:       `{"customer_name":"Alice","travel_date":"2000-01-01","origin":"BOM","destination":"DEL","passengers":2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Travel date cannot be in the past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/booking", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateBooking(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]any{"error": tt.wantError}, body)
		})
	}
}

func TestCreateBooking_HTTPSuccess(t *testing.T) {
	h := newTestBookingHandler()

	body := `{"customer_name":"Alice","travel_date":"2099-01-01","origin":"BOM","destination":"DEL","passengers":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Regexp(t, `^BK-[0-9A-F]{8}$`, resp["booking_reference"])
	assert.Equal(t, "BOM → DEL", resp["route"])
	assert.Equal(t, "one_way", resp["trip_type"])
	assert.Equal(t, float64(2), resp["passengers"])
	assert.Equal(t, "undefined", resp["env"])
	assert.Equal(t, "undefined", resp["run_date"])
	assert.NotContains(t, resp, "error")
}
