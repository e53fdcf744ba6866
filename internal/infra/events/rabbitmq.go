package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"billboard-booking/internal/pkg/config"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQPublisher publishes confirmation events to a durable queue on the
// default exchange. The connection is dialled lazily and re-dialled after the
// broker drops it.
type RabbitMQPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewRabbitMQPublisher(cfg config.RabbitMQConfig) *RabbitMQPublisher {
	return &RabbitMQPublisher{url: cfg.URL, queue: cfg.Queue}
}

func (p *RabbitMQPublisher) PublishBookingsConfirmed(ctx context.Context, event shared.BookingsConfirmed) error {
	pub, err := newPublishing(event)
	if err != nil {
		return err
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "rabbitmq: queue declare")
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return errs.Wrap(err, "rabbitmq: publish")
	}
	return nil
}

// newPublishing stamps the message with the event's own time. The session id
// is the message id, so consumers can drop redeliveries.
func newPublishing(event shared.BookingsConfirmed) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, errs.Wrap(err, "marshal bookings confirmed event")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt.UTC(),
		MessageId:    event.SessionID.String(),
		Type:         "bookings.confirmed",
		Body:         body,
	}, nil
}

func (p *RabbitMQPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, errs.Wrap(err, "rabbitmq: dial")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: open channel")
	}
	return ch, nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) PublishBookingsConfirmed(_ context.Context, event shared.BookingsConfirmed) error {
	slog.Info("bookings confirmed",
		"session_id", event.SessionID,
		"resource_id", event.ResourceID,
		"bookings", len(event.BookingIDs),
		"total_amount", event.TotalAmount)
	return nil
}
