package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderSessions(t *testing.T) {
	price := decimal.RequireFromString("12.5")
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	movies := []response.MovieSessionsResponse{{
		Movie: response.MovieResponse{ID: 3, Title: "Dune"},
		Theaters: []response.TheaterSessionsResponse{{
			Theater: response.TheaterResponse{ID: 1, Name: "Rex"},
			Dates: []response.DateSessionsResponse{{
				Date: "2024-03-01",
				Showtimes: []response.ShowtimeResponse{
					{ID: 7, StartTime: time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC), Quality: "HD", Language: "ENGLISH", Price: &price},
					{ID: 8, StartTime: time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC), Quality: "IMAX", Language: "FRENCH"},
				},
			}},
		}},
	}}

	var out bytes.Buffer
	renderSessions(&out, movies, paris)

	got := out.String()
	assert.Contains(t, got, "Dune")
	assert.Contains(t, got, "Rex")
	assert.Contains(t, got, "18:00")
	assert.Contains(t, got, "21:30")
	assert.Contains(t, got, "12.50")
	assert.Contains(t, got, "IMAX")
}

func TestRenderSessionsEmpty(t *testing.T) {
	var out bytes.Buffer
	renderSessions(&out, nil, nil)
	assert.Equal(t, "No sessions found.\n", out.String())
}

func TestRenderSeatMap(t *testing.T) {
	price := decimal.RequireFromString("9.9")
	seatMap := &response.SeatMapResponse{
		ShowtimeID:     7,
		TotalSeats:     3,
		AvailableSeats: 2,
		SeatsPerRow:    2,
		PricePerSeat:   &price,
		Rows: []response.SeatRowResponse{
			{Row: "A", Seats: []response.SeatResponse{
				{SeatNumber: 1, Row: "A", IsDisabled: true},
				{SeatNumber: 2, Row: "A", IsOccupied: true, IsDisabled: true},
			}},
			{Row: "B", Seats: []response.SeatResponse{{SeatNumber: 3, Row: "B"}}},
		},
	}

	var out bytes.Buffer
	renderSeatMap(&out, seatMap)

	got := out.String()
	assert.Contains(t, got, "2/3 seats available")
	assert.Contains(t, got, "1*")
	assert.Contains(t, got, "xx")
	assert.Contains(t, got, "9.90 per seat")
}

func TestSeatCell(t *testing.T) {
	assert.Equal(t, "12", seatCell(response.SeatResponse{SeatNumber: 12}))
	assert.Equal(t, "2*", seatCell(response.SeatResponse{SeatNumber: 2, IsDisabled: true}))
	assert.Equal(t, "xx", seatCell(response.SeatResponse{SeatNumber: 2, IsDisabled: true, IsOccupied: true}))
}

type purgeCounter struct {
	usecase.SelectionService
	calls atomic.Int32
	err   error
}

func (p *purgeCounter) PurgeExpired(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func TestPurgeSelections(t *testing.T) {
	t.Run("runs until canceled", func(t *testing.T) {
		svc := &purgeCounter{err: errors.New("db down")}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		go func() {
			purgeSelections(ctx, svc, 5*time.Millisecond, zap.NewNop())
			close(done)
		}()

		require.Eventually(t, func() bool { return svc.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("purge loop did not stop")
		}
	})

	t.Run("disabled interval returns at once", func(t *testing.T) {
		svc := &purgeCounter{}
		purgeSelections(context.Background(), svc, 0, zap.NewNop())
		assert.Zero(t, svc.calls.Load())
	})
}

func TestAPIServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- APIServer(ctx, http.NotFoundHandler(), "0", zap.NewNop())
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "cinema-ticketing dev\n", out.String())
}

func TestNewBackendAPIWithoutRedis(t *testing.T) {
	config := &utils.Config{Backend: utils.BackendConfig{URL: "http://backend.test/api"}}

	api, release := newBackendAPI(config, zap.NewNop())
	defer release()

	assert.IsType(t, &backend.CachedAPI{}, api)
}
