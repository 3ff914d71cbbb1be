package mocks

import (
	"context"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockBackendAPI struct {
	mock.Mock
	backend.API
}

func (m *MockBackendAPI) ListShowtimes(ctx context.Context, filter backend.ShowtimeFilter) ([]entity.Showtime, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Showtime), args.Error(1)
}

func (m *MockBackendAPI) GetShowtime(ctx context.Context, id int64) (*entity.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Showtime), args.Error(1)
}

func (m *MockBackendAPI) GetOccupiedSeats(ctx context.Context, showtimeID int64) ([]int, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockBackendAPI) CreateBooking(ctx context.Context, dto entity.CreateBookingDto) (*entity.Booking, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBackendAPI) ListUserBookings(ctx context.Context, userID int64) ([]entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBackendAPI) ListMovies(ctx context.Context) ([]entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Movie), args.Error(1)
}

func (m *MockBackendAPI) GetMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockBackendAPI) ListTheaters(ctx context.Context) ([]entity.Theater, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Theater), args.Error(1)
}
