package mocks

import (
	"context"

	"cinema-ticketing/pkg/queue"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
	queue.Publisher
}

func (m *MockPublisher) PublishBookingSubmitted(ctx context.Context, event queue.BookingSubmittedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return nil
}
