package api

import (
	"net/http"

	reqdto "billboard-booking/internal/handler/dto/request"
	resdto "billboard-booking/internal/handler/dto/response"
	"billboard-booking/internal/handler/httperr"
	"billboard-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get availability
// @Description Hourly grid of a billboard for one date. A degraded grid was built without the booking ledger.
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := q.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	grid := h.q.Resolve(c.Request.Context(), id, date)
	c.JSON(http.StatusOK, resdto.FromGrid(id, grid))
}

// @Summary List bookings
// @Description Confirmed bookings of a billboard between two dates, inclusive
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/resources/{id}/bookings [get]
func (h *AvailabilityHandler) ListBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.BookingRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, to, err := q.ToDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	views, err := h.q.ListBookings(c.Request.Context(), id, from, to)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
