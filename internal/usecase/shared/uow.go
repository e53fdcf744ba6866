package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

import (
	"context"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/domain/resource"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/infra/query"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in a read-write transaction, retrying serialization
// failures and deadlocks.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx query.DBTX) error) error
}

// BookingStore is the booking ledger the engine reads availability from and
// writes bookings to.
type BookingStore interface {
	// CheckAvailabilitySystem fails when the ledger cannot be reached.
	CheckAvailabilitySystem(ctx context.Context) error
	// GetBookings returns confirmed bookings of the resource between from and to, inclusive.
	GetBookings(ctx context.Context, resourceID uuid.UUID, from, to schedule.Date) ([]*booking.Booking, error)
	CreateBooking(ctx context.Context, draft booking.Draft) (uuid.UUID, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

// BatchBookingStore can persist several drafts all-or-nothing.
type BatchBookingStore interface {
	BookingStore
	CreateBookings(ctx context.Context, drafts []booking.Draft) ([]uuid.UUID, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

type SessionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (campaign.Session, error)
	Save(ctx context.Context, session campaign.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

type EventPublisher interface {
	PublishBookingsConfirmed(ctx context.Context, event BookingsConfirmed) error
}
