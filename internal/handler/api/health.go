package api

import (
	"context"
	"net/http"
	"time"

	"billboard-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	store    shared.BookingStore
	sessions shared.SessionRepository
}

func NewHealthHandler(store shared.BookingStore, sessions shared.SessionRepository) *HealthHandler {
	return &HealthHandler{store: store, sessions: sessions}
}

// @Summary Health check
// @Description Check the booking ledger and the session store
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := gin.H{"database": "ok", "sessions": "ok"}
	status := http.StatusOK
	if err := h.store.CheckAvailabilitySystem(ctx); err != nil {
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if err := h.sessions.Ping(ctx); err != nil {
		checks["sessions"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	result := "ok"
	if status != http.StatusOK {
		result = "degraded"
	}
	c.JSON(status, gin.H{
		"status": result,
		"checks": checks,
	})
}
