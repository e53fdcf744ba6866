package bootstrap

import (
	"context"

	"billboard-booking/internal/infra/events"
	"billboard-booking/internal/pkg/config"
	"billboard-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.RabbitMQ.Enabled {
		return events.NewLogPublisher()
	}

	pub := events.NewRabbitMQPublisher(cfg.RabbitMQ)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
