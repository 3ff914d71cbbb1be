package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	closed     bool
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
}

func (f *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if !durable {
		return amqp.Queue{}, errors.New("queue must be durable")
	}
	f.declared = append(f.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) IsClosed() bool { return f.closed }

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishBookingSubmitted(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher("booking.submitted", func() (channel, error) { return ch, nil }, zap.NewNop())

	event := BookingSubmittedEvent{
		BookingID:       42,
		SessionCinemaID: 7,
		SeatNumbers:     []int{1, 2},
		TotalPrice:      decimal.RequireFromString("25"),
		Status:          "PENDING",
		SubmittedAt:     time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishBookingSubmitted(context.Background(), event))

	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"booking.submitted"}, ch.declared)
	assert.Equal(t, []string{"booking.submitted"}, ch.keys)

	msg := ch.published[0]
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, float64(42), got["booking_id"])
	assert.Equal(t, "25", got["total_price"])
	assert.NotContains(t, got, "guest_email")
}

func TestPublisherReopensClosedChannel(t *testing.T) {
	opened := 0
	var current *fakeChannel
	p := newPublisher("q", func() (channel, error) {
		opened++
		current = &fakeChannel{}
		return current, nil
	}, zap.NewNop())

	require.NoError(t, p.PublishBookingSubmitted(context.Background(), BookingSubmittedEvent{BookingID: 1}))
	current.closed = true
	require.NoError(t, p.PublishBookingSubmitted(context.Background(), BookingSubmittedEvent{BookingID: 2}))

	assert.Equal(t, 2, opened)
	assert.Len(t, current.published, 1)
}

func TestPublisherErrors(t *testing.T) {
	t.Run("channel cannot be opened", func(t *testing.T) {
		p := newPublisher("q", func() (channel, error) { return nil, amqp.ErrClosed }, zap.NewNop())

		err := p.PublishBookingSubmitted(context.Background(), BookingSubmittedEvent{BookingID: 1})

		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("publish rejected", func(t *testing.T) {
		ch := &fakeChannel{publishErr: errors.New("blocked")}
		p := newPublisher("q", func() (channel, error) { return ch, nil }, zap.NewNop())

		err := p.PublishBookingSubmitted(context.Background(), BookingSubmittedEvent{BookingID: 9})

		assert.ErrorContains(t, err, "publish booking 9")
	})
}

func TestCloseClosesChannel(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher("q", func() (channel, error) { return ch, nil }, zap.NewNop())
	require.NoError(t, p.PublishBookingSubmitted(context.Background(), BookingSubmittedEvent{}))

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
