package shared

import (
	"time"

	"github.com/google/uuid"
)

// BookingsConfirmed is published after every booking of a submission was created.
type BookingsConfirmed struct {
	SessionID     uuid.UUID   `json:"sessionId"`
	ResourceID    uuid.UUID   `json:"resourceId"`
	BookingIDs    []uuid.UUID `json:"bookingIds"`
	CustomerEmail string      `json:"customerEmail"`
	TotalHours    int         `json:"totalHours"`
	TotalAmount   int64       `json:"totalAmount"`
	OccurredAt    time.Time   `json:"occurredAt"`
}
