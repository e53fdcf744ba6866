package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/mock_availability.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/pkg/config"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// FailurePolicy decides which grid is shown when the booking ledger cannot be read.
type FailurePolicy string

const (
	// FailOpen shows every hour as free; conflicts surface at submission.
	FailOpen FailurePolicy = "open"
	// FailClosed shows every hour as booked.
	FailClosed FailurePolicy = "closed"
)

// MaxBookingRangeDays bounds ListBookings.
const MaxBookingRangeDays = 92

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resourceId"`
	Date        string    `json:"date"`
	StartHour   int       `json:"startHour"`
	EndHour     int       `json:"endHour"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AvailabilityQueries interface {
	// Resolve never fails: a ledger error yields a degraded grid per the failure policy.
	Resolve(ctx context.Context, resourceID uuid.UUID, date schedule.Date) schedule.Grid
	ListBookings(ctx context.Context, resourceID uuid.UUID, from, to schedule.Date) ([]BookingView, error)
}

type availabilityQueriesImpl struct {
	store  shared.BookingStore
	policy FailurePolicy
}

func NewAvailabilityQueries(store shared.BookingStore, cfg config.Config) AvailabilityQueries {
	return NewAvailabilityResolver(store, FailurePolicy(cfg.Booking.AvailabilityFailurePolicy))
}

func NewAvailabilityResolver(store shared.BookingStore, policy FailurePolicy) AvailabilityQueries {
	if policy != FailClosed {
		policy = FailOpen
	}
	return &availabilityQueriesImpl{store: store, policy: policy}
}

func (q *availabilityQueriesImpl) Resolve(ctx context.Context, resourceID uuid.UUID, date schedule.Date) schedule.Grid {
	bookings, err := q.store.GetBookings(ctx, resourceID, date, date)
	if err != nil {
		slog.WarnContext(ctx, "availability fetch failed, using fallback grid",
			"resource_id", resourceID,
			"date", date.String(),
			"policy", string(q.policy),
			"error", err.Error())
		if q.policy == FailClosed {
			return schedule.BlockedGrid(date)
		}
		return schedule.FreeGrid(date)
	}

	occupied := make([]schedule.Occupancy, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() || !b.Date().Equal(date) {
			continue
		}
		occupied = append(occupied, b.Occupancy())
	}
	return schedule.NewGrid(date, occupied)
}

func (q *availabilityQueriesImpl) ListBookings(ctx context.Context, resourceID uuid.UUID, from, to schedule.Date) ([]BookingView, error) {
	if to.Before(from) {
		return nil, errs.NewValidationError(map[string]string{"to": "must not be before from"})
	}
	if from.AddDays(MaxBookingRangeDays).Before(to) {
		return nil, errs.NewValidationError(map[string]string{"to": "range is limited to 92 days"})
	}

	bookings, err := q.store.GetBookings(ctx, resourceID, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSystemUnavailable)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			ID:          b.ID(),
			ResourceID:  b.ResourceID(),
			Date:        b.Date().String(),
			StartHour:   b.StartHour(),
			EndHour:     b.EndHour(),
			Status:      b.Status().String(),
			TotalAmount: b.TotalAmount().Amount(),
			CreatedAt:   b.CreatedAt(),
		})
	}
	return views, nil
}
