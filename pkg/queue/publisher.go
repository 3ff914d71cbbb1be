package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Publisher interface {
	PublishBookingSubmitted(ctx context.Context, event BookingSubmittedEvent) error
	Close() error
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// RabbitPublisher publishes persistent JSON messages to a durable queue on
// the default exchange. A closed channel is reopened on the next publish.
type RabbitPublisher struct {
	mu    sync.Mutex
	queue string
	conn  *amqp.Connection
	ch    channel
	open  func() (channel, error)
	log   *zap.Logger
}

// NewRabbitPublisher dials the broker and declares queue.
func NewRabbitPublisher(url, queue string, log *zap.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	p := newPublisher(queue, func() (channel, error) {
		if conn.IsClosed() {
			return nil, amqp.ErrClosed
		}
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		return ch, nil
	}, log)
	p.conn = conn

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureChannel(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

func newPublisher(queue string, open func() (channel, error), log *zap.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		queue: queue,
		open:  open,
		log:   log.With(zap.String("publisher", queue)),
	}
}

// ensureChannel must be called with mu held.
func (p *RabbitPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}

	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}
	p.ch = ch
	return nil
}

func (p *RabbitPublisher) PublishBookingSubmitted(ctx context.Context, event BookingSubmittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		p.log.Error("Failed to prepare channel", zap.Error(err))
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         "booking.submitted",
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			zap.Error(err),
			zap.Int64("booking_id", event.BookingID),
		)
		return fmt.Errorf("publish booking %d: %w", event.BookingID, err)
	}

	p.log.Debug("Booking event published", zap.Int64("booking_id", event.BookingID))
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil && !p.ch.IsClosed() {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

// NopPublisher drops every event. It is used when RABBITMQ_URL is empty.
type NopPublisher struct{}

func (NopPublisher) PublishBookingSubmitted(context.Context, BookingSubmittedEvent) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
