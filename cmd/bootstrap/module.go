package bootstrap

import (
	"billboard-booking/cmd/bootstrap/components"
	"billboard-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// Module wires the whole service: infrastructure clients first, then the
// layers that depend on them.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	EventsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
