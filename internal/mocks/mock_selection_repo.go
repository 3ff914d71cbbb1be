package mocks

import (
	"context"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSelectionRepo struct {
	mock.Mock
	repository.SelectionRepository
}

func (m *MockSelectionRepo) Create(ctx context.Context, selection *entity.SeatSelection) error {
	args := m.Called(ctx, selection)
	return args.Error(0)
}

func (m *MockSelectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatSelection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeatSelection), args.Error(1)
}

func (m *MockSelectionRepo) UpdateSeats(ctx context.Context, id uuid.UUID, seatNumbers []int, expiresAt time.Time) error {
	args := m.Called(ctx, id, seatNumbers, expiresAt)
	return args.Error(0)
}

func (m *MockSelectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSelectionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
