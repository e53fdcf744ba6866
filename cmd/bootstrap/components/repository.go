package components

import (
	"billboard-booking/internal/infra/query"
	"billboard-booking/internal/infra/readstore"
	"billboard-booking/internal/infra/repository"
	"billboard-booking/internal/infra/session"
	"billboard-booking/internal/infra/uow"
	"billboard-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		query.New,
		NewDBTX,
		uow.NewPostgresUoW,
		// Booking ledger
		NewBookingQueries,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingStore)),
		),
		// Billboards
		NewResourceReadQueries,
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(shared.ResourceReadStore)),
		),
		// Campaign sessions
		fx.Annotate(
			session.NewRedisSessionRepository,
			fx.As(new(shared.SessionRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewBookingQueries(q *query.Queries) repository.BookingQueries {
	return q
}

func NewResourceReadQueries(q *query.Queries) readstore.ResourceReadQueries {
	return q
}
