package response

import (
	"time"

	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	ResourceID     uuid.UUID      `json:"resourceId"`
	Date           string         `json:"date"`
	Degraded       bool           `json:"degraded"`
	Slots          []SlotResponse `json:"slots"`
	AvailableHours []int          `json:"availableHours"`
}

func FromGrid(resourceID uuid.UUID, g schedule.Grid) *AvailabilityResponse {
	res := &AvailabilityResponse{
		ResourceID:     resourceID,
		Date:           g.Date().String(),
		Degraded:       g.Degraded(),
		AvailableHours: g.AvailableHours(),
	}
	slots := g.Slots()
	_ = copier.Copy(&res.Slots, &slots)
	return res
}

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resourceId"`
	Date        string    `json:"date"`
	StartHour   int       `json:"startHour"`
	EndHour     int       `json:"endHour"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingViews(views []queries.BookingView) []BookingResponse {
	res := make([]BookingResponse, 0, len(views))
	_ = copier.Copy(&res, &views)
	return res
}
