package api

import (
	"net/http"
	"strconv"

	"billboard-booking/internal/domain/schedule"
	reqdto "billboard-booking/internal/handler/dto/request"
	resdto "billboard-booking/internal/handler/dto/response"
	"billboard-booking/internal/handler/httperr"
	"billboard-booking/internal/usecase/commands"
	"billboard-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignHandler struct {
	cmds commands.CampaignCommands
	q    queries.CampaignQueries
}

func NewCampaignHandler(cmds commands.CampaignCommands, q queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{cmds: cmds, q: q}
}

// @Summary Start campaign
// @Description Open a booking session for a billboard after checking the booking system
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body reqdto.StartCampaignRequest true "Start campaign request"
// @Success 201 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/campaigns [post]
func (h *CampaignHandler) Start(c *gin.Context) {
	var req reqdto.StartCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Start(c.Request.Context(), req.ResourceID)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.Header("Location", "/api/campaigns/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCampaignView(view))
}

// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 404 {object} httperr.Response
// @Router /api/campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Choose campaign type
// @Description Start a fresh calendar for a single-day or multi-day campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body reqdto.ChooseTypeRequest true "Campaign type"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/campaigns/{id}/type [put]
func (h *CampaignHandler) ChooseType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.ChooseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.cmds.ChooseType(c.Request.Context(), id, req.Type))
}

// @Summary Select date
// @Description Replace (single-day) or toggle (multi-day) a date and resolve its availability
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body reqdto.SelectDateRequest true "Date"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/campaigns/{id}/dates [post]
func (h *CampaignHandler) SelectDate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := req.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	h.respond(c)(h.cmds.SelectDate(c.Request.Context(), id, date))
}

// @Summary Toggle hour
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param hour path int true "Hour of day"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/campaigns/{id}/dates/{date}/hours/{hour} [post]
func (h *CampaignHandler) ToggleHour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	date, err := schedule.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hour", nil)
		return
	}
	h.respond(c)(h.cmds.ToggleHour(c.Request.Context(), id, date, hour))
}

// @Summary Apply hour template
// @Description Copy hours onto other selected dates, skipping hours booked there
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body reqdto.ApplyTemplateRequest true "Template"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/campaigns/{id}/template [post]
func (h *CampaignHandler) ApplyTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	h.respond(c)(h.cmds.ApplyTemplate(c.Request.Context(), id, in))
}

// @Summary Proceed to details
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/campaigns/{id}/details [post]
func (h *CampaignHandler) ProceedToDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c)(h.cmds.ProceedToDetails(c.Request.Context(), id))
}

// @Summary Back to calendar
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 409 {object} httperr.Response
// @Router /api/campaigns/{id}/calendar [post]
func (h *CampaignHandler) BackToCalendar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c)(h.cmds.BackToCalendar(c.Request.Context(), id))
}

// @Summary Submit campaign
// @Description Create one booking per contiguous block of selected hours
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body reqdto.SubmitCampaignRequest true "Customer details"
// @Success 201 {object} resdto.SubmitCampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/campaigns/{id}/submit [post]
func (h *CampaignHandler) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), id, req.ToInput())
	if err != nil {
		var detail any
		if result != nil && len(result.BookingIDs) > 0 {
			// bookings created before the failure; see POST /compensate
			detail = gin.H{"createdBookingIds": result.BookingIDs}
		}
		abortWithUseCaseError(c, err, detail)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Compensate partial submission
// @Description Cancel the bookings created by the last failed submission
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CompensateResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/campaigns/{id}/compensate [post]
func (h *CampaignHandler) Compensate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Compensate(c.Request.Context(), id)
	if err != nil {
		var detail any
		if result != nil {
			detail = resdto.FromCompensateResult(result)
		}
		abortWithUseCaseError(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompensateResult(result))
}

// @Summary Close campaign
// @Tags campaigns
// @Param id path string true "Campaign ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/campaigns/{id} [delete]
func (h *CampaignHandler) Close(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Close(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) respond(c *gin.Context) func(*queries.CampaignView, error) {
	return func(view *queries.CampaignView, err error) {
		if err != nil {
			abortWithUseCaseError(c, err, nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCampaignView(view))
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
