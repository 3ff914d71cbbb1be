package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSelectionService lets each test plug in only the calls it exercises.
type fakeSelectionService struct {
	usecase.SelectionService
	start  func(ctx context.Context, req *request.StartSelectionRequest) (*response.SelectionResponse, error)
	toggle func(ctx context.Context, id string, req *request.ToggleSeatRequest) (*response.SelectionResponse, error)
	clear  func(ctx context.Context, id string) error
}

func (f *fakeSelectionService) Start(ctx context.Context, req *request.StartSelectionRequest) (*response.SelectionResponse, error) {
	return f.start(ctx, req)
}

func (f *fakeSelectionService) Toggle(ctx context.Context, id string, req *request.ToggleSeatRequest) (*response.SelectionResponse, error) {
	return f.toggle(ctx, id, req)
}

func (f *fakeSelectionService) Clear(ctx context.Context, id string) error {
	return f.clear(ctx, id)
}

func newSelectionRouter(svc usecase.SelectionService) http.Handler {
	h := NewSelectionHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/selections", h.Start)
	r.Post("/api/selections/{id}/toggle", h.Toggle)
	r.Delete("/api/selections/{id}", h.Clear)
	return r
}

func TestSelectionHandlerStart(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalled bool
	}{
		{name: "creates a draft", body: `{"session_cinema_id":7}`, wantStatus: http.StatusCreated, wantCalled: true},
		{name: "rejects a missing session", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "rejects malformed JSON", body: `{"session_cinema_id":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &fakeSelectionService{
				start: func(_ context.Context, req *request.StartSelectionRequest) (*response.SelectionResponse, error) {
					called = true
					return &response.SelectionResponse{ID: "draft", ShowtimeID: req.ShowtimeID, Seats: []response.SeatResponse{}, TotalPrice: decimal.Zero}, nil
				},
			}
			rec := httptest.NewRecorder()

			newSelectionRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selections", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				env := decodeEnvelope(t, rec)
				assert.True(t, env.Status)
				assert.Contains(t, string(env.Data), `"session_cinema_id":7`)
			}
		})
	}
}

func TestSelectionHandlerToggle(t *testing.T) {
	var gotID string
	var gotSeat int
	svc := &fakeSelectionService{
		toggle: func(_ context.Context, id string, req *request.ToggleSeatRequest) (*response.SelectionResponse, error) {
			gotID, gotSeat = id, req.SeatNumber
			if req.SeatNumber > 25 {
				return nil, usecase.ErrSeatNotFound
			}
			return &response.SelectionResponse{ID: id}, nil
		},
	}
	router := newSelectionRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selections/abc/toggle", strings.NewReader(`{"seat_number":12}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", gotID)
	assert.Equal(t, 12, gotSeat)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selections/abc/toggle", strings.NewReader(`{"seat_number":99}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selections/abc/toggle", strings.NewReader(`{"seat_number":0}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectionHandlerClear(t *testing.T) {
	svc := &fakeSelectionService{
		clear: func(_ context.Context, id string) error {
			if id == "gone" {
				return usecase.ErrSelectionNotFound
			}
			return nil
		},
	}
	router := newSelectionRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/selections/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Selection cleared", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/selections/gone", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
