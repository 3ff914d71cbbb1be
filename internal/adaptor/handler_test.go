package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-ticketing/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantErrors  string
	}{
		{
			name:        "validation",
			err:         fmt.Errorf("%w: page must be at least 1", usecase.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation failed: page must be at least 1",
		},
		{
			name:        "unknown session",
			err:         usecase.ErrShowtimeNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "session not found",
		},
		{
			name:        "expired selection",
			err:         usecase.ErrSelectionNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: usecase.ErrSelectionNotFound.Error(),
		},
		{
			name:        "taken seats are listed",
			err:         &usecase.SeatsTakenError{Seats: []int{4, 9}},
			wantStatus:  http.StatusConflict,
			wantMessage: usecase.ErrSeatsTaken.Error(),
			wantErrors:  `{"unavailable_seats":[4,9]}`,
		},
		{
			name:        "backend conflict",
			err:         fmt.Errorf("%w: %w", usecase.ErrSeatsTaken, errors.New("409 Conflict")),
			wantStatus:  http.StatusConflict,
			wantMessage: usecase.ErrSeatsTaken.Error(),
		},
		{
			name:        "cannot submit",
			err:         usecase.ErrCannotSubmit,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: usecase.ErrCannotSubmit.Error(),
		},
		{
			name:        "backend unavailable hides the cause",
			err:         fmt.Errorf("%w: %w", usecase.ErrBackendUnavailable, errors.New("dial tcp: connection refused")),
			wantStatus:  http.StatusBadGateway,
			wantMessage: usecase.ErrBackendUnavailable.Error(),
		},
		{
			name:        "unreadable booking confirmation",
			err:         fmt.Errorf("%w: %w", usecase.ErrBookingUnconfirmed, errors.New("decode booking: malformed json")),
			wantStatus:  http.StatusBadGateway,
			wantMessage: usecase.ErrBookingUnconfirmed.Error(),
		},
		{
			name:        "incomplete session",
			err:         usecase.ErrShowtimeIncomplete,
			wantStatus:  http.StatusBadGateway,
			wantMessage: usecase.ErrShowtimeIncomplete.Error(),
		},
		{
			name:        "unexpected",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handleServiceError(rec, zap.NewNop(), tt.err, "test")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Status)
			assert.Equal(t, tt.wantMessage, env.Message)
			if tt.wantErrors != "" {
				assert.JSONEq(t, tt.wantErrors, string(env.Errors))
			}
		})
	}
}

func TestHandleServiceErrorCanceled(t *testing.T) {
	rec := httptest.NewRecorder()

	handleServiceError(rec, zap.NewNop(), context.Canceled, "test")

	// nothing is written for a client that went away
	assert.Empty(t, rec.Body.String())
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		SeatNumber int `json:"seat_number"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr bool
	}{
		{name: "empty body", body: "", want: payload{}},
		{name: "object", body: `{"seat_number":12}`, want: payload{SeatNumber: 12}},
		{name: "malformed", body: `{"seat_number":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got payload
			err := decodeBody(req, &got)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decodeBody() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
