//go:build e2e

package events_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"billboard-booking/internal/infra/events"
	"billboard-booking/internal/pkg/config"
	"billboard-booking/internal/usecase/shared"
	"billboard-booking/tests/e2e"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRabbitMQPublisher(t *testing.T) {
	broker := e2e.StartRabbitMQ(t)
	cfg := config.RabbitMQConfig{
		Enabled: true,
		URL:     fmt.Sprintf("amqp://guest:guest@%s/", broker.Addr()),
		Queue:   "booking.confirmed." + uuid.NewString(),
	}

	publisher := events.NewRabbitMQPublisher(cfg)
	t.Cleanup(func() { _ = publisher.Close() })

	event := shared.BookingsConfirmed{
		SessionID:     uuid.New(),
		ResourceID:    uuid.New(),
		BookingIDs:    []uuid.UUID{uuid.New()},
		CustomerEmail: "jane@example.com",
		TotalHours:    3,
		TotalAmount:   60,
		// an injected clock far from wall time
		OccurredAt: time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, publisher.PublishBookingsConfirmed(ctx, event))

	conn, err := amqp.Dial(cfg.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.Close() })

	var msg amqp.Delivery
	require.Eventually(t, func() bool {
		var ok bool
		msg, ok, err = ch.Get(cfg.Queue, true)
		return err == nil && ok
	}, 5*time.Second, 100*time.Millisecond, "no message on %s", cfg.Queue)

	assert.Equal(t, event.SessionID.String(), msg.MessageId)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.True(t, event.OccurredAt.Equal(msg.Timestamp), "timestamp %v", msg.Timestamp)

	var got shared.BookingsConfirmed
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, event.BookingIDs, got.BookingIDs)
	assert.Equal(t, event.TotalAmount, got.TotalAmount)

	t.Run("publishing again reuses the connection", func(t *testing.T) {
		require.NoError(t, publisher.PublishBookingsConfirmed(ctx, event))
		require.Eventually(t, func() bool {
			_, ok, err := ch.Get(cfg.Queue, true)
			return err == nil && ok
		}, 5*time.Second, 100*time.Millisecond)
	})
}
