package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/mock_booking.go -package=repositorymock

import (
	"context"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/infra"
	"billboard-booking/internal/infra/query"
	"billboard-booking/internal/infra/repository/converter"
	"billboard-booking/internal/pkg/clock"
	"billboard-booking/internal/pkg/pgconv"
	"billboard-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	Ping(ctx context.Context, db query.DBTX) error
	ListConfirmedBookings(ctx context.Context, db query.DBTX, arg query.ListConfirmedBookingsParams) ([]query.Bookings, error)
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (uuid.UUID, error)
	CancelBooking(ctx context.Context, db query.DBTX, arg query.CancelBookingParams) (int64, error)
}

// BookingRepository is the PostgreSQL booking ledger. It implements
// shared.BatchBookingStore.
type BookingRepository struct {
	queries BookingQueries
	db      query.DBTX
	uow     shared.UnitOfWork
	clock   clock.Clock
}

func NewBookingRepository(queries BookingQueries, db query.DBTX, uow shared.UnitOfWork, clock clock.Clock) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		uow:     uow,
		clock:   clock,
	}
}

func (r *BookingRepository) CheckAvailabilitySystem(ctx context.Context) error {
	if err := r.queries.Ping(ctx, r.db); err != nil {
		return infra.WrapRepoErr("booking ledger health check failed", err, infra.KindUnavailable)
	}
	return nil
}

func (r *BookingRepository) GetBookings(ctx context.Context, resourceID uuid.UUID, from, to schedule.Date) ([]*booking.Booking, error) {
	rows, err := r.queries.ListConfirmedBookings(ctx, r.db, query.ListConfirmedBookingsParams{
		BillboardID: resourceID,
		FromDate:    pgconv.DateToPgtype(from),
		ToDate:      pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *BookingRepository) CreateBooking(ctx context.Context, draft booking.Draft) (uuid.UUID, error) {
	return r.create(ctx, r.db, draft)
}

// CreateBookings inserts every draft in one transaction.
func (r *BookingRepository) CreateBookings(ctx context.Context, drafts []booking.Draft) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx query.DBTX) error {
		ids = make([]uuid.UUID, 0, len(drafts))
		for _, d := range drafts {
			id, err := r.create(ctx, tx, d)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CancelBooking is idempotent: a booking that is already canceled is left as
// is. Only an id the ledger has never seen is NOT_FOUND.
func (r *BookingRepository) CancelBooking(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.CancelBooking(ctx, r.db, query.CancelBookingParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if affected > 0 {
		return nil
	}

	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to look up booking", err)
	}
	if booking.Status(row.Status) != booking.StatusCanceled {
		return infra.WrapRepoErr("booking could not be canceled in status "+row.Status, nil, infra.KindDBFailure)
	}
	return nil
}

func (r *BookingRepository) create(ctx context.Context, db query.DBTX, draft booking.Draft) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, db, converter.DraftToInfra(draft))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
