package components

import (
	"billboard-booking/internal/handler"
	"billboard-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCampaignHandler,
		api.NewAvailabilityHandler,
		api.NewHealthHandler,
		func(c *api.CampaignHandler, a *api.AvailabilityHandler, h *api.HealthHandler) handler.Handlers {
			return handler.Handlers{Campaign: c, Availability: a, Health: h}
		},
	),
	fx.Invoke(handler.NewRouter),
)
