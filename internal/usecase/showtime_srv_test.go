package usecase

import (
	"errors"
	"testing"
	"time"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSessionsByMovie(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	evening := *testShowtime()
	late := *testShowtime()
	late.ID = 8
	late.StartTime = time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	noMovie := *testShowtime()
	noMovie.ID = 9
	noMovie.Movie = nil
	listed := []entity.Showtime{evening, late, noMovie}

	tests := []struct {
		name       string
		req        request.SessionFilter
		setupMocks func(api *mocks.MockBackendAPI)
		wantErr    error
		wantDates  map[string][]int64
	}{
		{
			name: "groups by local date",
			req:  request.SessionFilter{MovieID: 3},
			setupMocks: func(api *mocks.MockBackendAPI) {
				api.On("ListShowtimes", mock.Anything, backend.ShowtimeFilter{MovieID: 3}).Return(listed, nil)
			},
			wantDates: map[string][]int64{"2024-03-01": {7}, "2024-03-02": {8}},
		},
		{
			name: "keeps only the requested local date",
			req:  request.SessionFilter{Date: "2024-03-02"},
			setupMocks: func(api *mocks.MockBackendAPI) {
				api.On("ListShowtimes", mock.Anything, backend.ShowtimeFilter{Date: "2024-03-02"}).Return(listed, nil)
			},
			wantDates: map[string][]int64{"2024-03-02": {8}},
		},
		{
			name:    "rejects a malformed date",
			req:     request.SessionFilter{Date: "03/01/2024"},
			wantErr: ErrValidation,
		},
		{
			name: "reports an unavailable backend",
			req:  request.SessionFilter{},
			setupMocks: func(api *mocks.MockBackendAPI) {
				api.On("ListShowtimes", mock.Anything, backend.ShowtimeFilter{}).Return(nil, errors.New("connection refused"))
			},
			wantErr: ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mocks.MockBackendAPI)
			if tt.setupMocks != nil {
				tt.setupMocks(api)
			}
			svc := NewShowtimeService(api, paris, zap.NewNop())

			resp, err := svc.GetSessionsByMovie(t.Context(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, resp, 1)
			assert.Equal(t, "Dune", resp[0].Movie.Title)
			require.Len(t, resp[0].Theaters, 1)
			assert.Equal(t, "Rex", resp[0].Theaters[0].Theater.Name)

			got := map[string][]int64{}
			for _, date := range resp[0].Theaters[0].Dates {
				for _, st := range date.Showtimes {
					got[date.Date] = append(got[date.Date], st.ID)
				}
			}
			assert.Equal(t, tt.wantDates, got)
		})
	}
}
