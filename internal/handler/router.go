package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"billboard-booking/internal/handler/api"
	"billboard-booking/internal/handler/middleware"
	"billboard-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Campaign     *api.CampaignHandler
	Availability *api.AvailabilityHandler
	Health       *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// the request logger runs first so recovered panics carry the request id
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		resources := apiGroup.Group("/resources")
		addRoutes(resources, []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.Get},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Availability.ListBookings},
		})

		campaigns := apiGroup.Group("/campaigns")
		addRoutes(campaigns, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Campaign.Start},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Campaign.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Campaign.Close},
			{Method: http.MethodPut, Path: "/:id/type", Handler: h.Campaign.ChooseType},
			{Method: http.MethodPost, Path: "/:id/dates", Handler: h.Campaign.SelectDate},
			{Method: http.MethodPost, Path: "/:id/dates/:date/hours/:hour", Handler: h.Campaign.ToggleHour},
			{Method: http.MethodPost, Path: "/:id/template", Handler: h.Campaign.ApplyTemplate},
			{Method: http.MethodPost, Path: "/:id/details", Handler: h.Campaign.ProceedToDetails},
			{Method: http.MethodPost, Path: "/:id/calendar", Handler: h.Campaign.BackToCalendar},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Campaign.Submit},
			{Method: http.MethodPost, Path: "/:id/compensate", Handler: h.Campaign.Compensate},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
