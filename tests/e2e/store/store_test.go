//go:build e2e

package store_test

import (
	"context"
	"testing"
	"time"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/infra"
	"billboard-booking/internal/infra/query"
	"billboard-booking/internal/infra/repository"
	"billboard-booking/internal/infra/session"
	"billboard-booking/internal/infra/uow"
	"billboard-booking/internal/pkg/clock"
	"billboard-booking/tests/common/builder"
	"billboard-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	e2e.SharedSuite
	repo     *repository.BookingRepository
	sessions *session.RedisSessionRepository
}

func TestStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	clk, err := clock.NewClock(s.Config)
	s.Require().NoError(err)
	s.repo = repository.NewBookingRepository(query.New(), s.DB, uow.NewPostgresUoW(s.DB), clk)
	s.sessions = session.NewRedisSessionRepository(s.Redis, s.Config.Redis)
}

func (s *StoreSuite) draft(resourceID uuid.UUID, date schedule.Date, start, end int) booking.Draft {
	d, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = resourceID
		b.Date = date
		b.Start = start
		b.End = end
	}).BuildDraft()
	require.NoError(s.T(), err)
	return d
}

// =============================================================================
// TestBookingRepository - ledger constraints enforced by Postgres
// =============================================================================

func (s *StoreSuite) TestBookingRepository() {
	ctx := context.Background()

	s.Run("Normal case: created booking is listed with its interval and amount", func() {
		t := s.T()
		resourceID := e2e.CreateTestBillboard(t, s.DB, "Main St", 20, 0)
		date := e2e.FutureDate(4)

		id, err := s.repo.CreateBooking(ctx, s.draft(resourceID, date, 9, 12))
		require.NoError(t, err)

		got, err := s.repo.GetBookings(ctx, resourceID, date, date)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].ID())
		assert.True(t, got[0].Date().Equal(date))
		assert.Equal(t, schedule.Interval{Start: 9, End: 12}, got[0].Interval())
		assert.Equal(t, int64(60), got[0].TotalAmount().Amount())
	})

	s.Run("Error case: overlapping confirmed booking is a conflict", func() {
		t := s.T()
		resourceID := e2e.CreateTestBillboard(t, s.DB, "Main St", 20, 0)
		date := e2e.FutureDate(4)

		_, err := s.repo.CreateBooking(ctx, s.draft(resourceID, date, 9, 12))
		require.NoError(t, err)

		_, err = s.repo.CreateBooking(ctx, s.draft(resourceID, date, 11, 13))
		require.Error(t, err)
		assert.Equal(t, infra.KindConflict, infra.KindOf(err))

		// adjacent is fine
		_, err = s.repo.CreateBooking(ctx, s.draft(resourceID, date, 12, 13))
		require.NoError(t, err)
	})

	s.Run("Normal case: canceled booking frees its hours", func() {
		t := s.T()
		resourceID := e2e.CreateTestBillboard(t, s.DB, "Main St", 20, 0)
		date := e2e.FutureDate(4)

		id, err := s.repo.CreateBooking(ctx, s.draft(resourceID, date, 9, 12))
		require.NoError(t, err)
		require.NoError(t, s.repo.CancelBooking(ctx, id))

		// canceling twice is a no-op, an unknown id is not
		require.NoError(t, s.repo.CancelBooking(ctx, id))
		err = s.repo.CancelBooking(ctx, uuid.New())
		assert.Equal(t, infra.KindNotFound, infra.KindOf(err))

		_, err = s.repo.CreateBooking(ctx, s.draft(resourceID, date, 9, 12))
		require.NoError(t, err)
	})

	s.Run("Error case: unknown billboard violates the foreign key", func() {
		t := s.T()

		_, err := s.repo.CreateBooking(ctx, s.draft(uuid.New(), e2e.FutureDate(4), 9, 12))
		require.Error(t, err)
		assert.Equal(t, infra.KindForeignKeyViolated, infra.KindOf(err))
	})

	s.Run("Error case: batch insert is all or nothing", func() {
		t := s.T()
		resourceID := e2e.CreateTestBillboard(t, s.DB, "Main St", 20, 0)
		d1, d2 := e2e.FutureDate(4), e2e.FutureDate(5)
		e2e.CreateTestBooking(t, s.DB, resourceID, d2, 10, 11, "confirmed")

		_, err := s.repo.CreateBookings(ctx, []booking.Draft{
			s.draft(resourceID, d1, 9, 12),
			s.draft(resourceID, d2, 9, 12),
		})
		require.Error(t, err)
		assert.Equal(t, infra.KindConflict, infra.KindOf(err))

		got, err := s.repo.GetBookings(ctx, resourceID, d1, d1)
		require.NoError(t, err)
		assert.Empty(t, got, "first insert must be rolled back")
	})

	s.Run("Normal case: availability probe succeeds", func() {
		require.NoError(s.T(), s.repo.CheckAvailabilitySystem(ctx))
	})
}

// =============================================================================
// TestSessionRepository - Redis snapshots
// =============================================================================

func (s *StoreSuite) TestSessionRepository() {
	ctx := context.Background()

	s.Run("Normal case: saved session round-trips with a TTL", func() {
		t := s.T()

		cb := builder.NewCampaignBuilder().With(func(b *builder.CampaignBuilder) {
			b.Booked = map[string][]schedule.Interval{"2030-03-14": {{Start: 12, End: 13}}}
		})
		sess, err := cb.BuildCalendar()
		require.NoError(t, err)

		require.NoError(t, s.sessions.Save(ctx, sess))

		got, err := s.sessions.Get(ctx, sess.ID())
		require.NoError(t, err)
		assert.Equal(t, sess.Snapshot(), got.Snapshot())

		ttl, err := s.Redis.TTL(ctx, s.Config.Redis.KeyPrefix+sess.ID().String()).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, s.Config.Redis.SessionTTL)
	})

	s.Run("Error case: missing and deleted sessions are not found", func() {
		t := s.T()

		_, err := s.sessions.Get(ctx, uuid.New())
		assert.Equal(t, infra.KindNotFound, infra.KindOf(err))

		sess := builder.NewCampaignBuilder().BuildNew()
		require.NoError(t, s.sessions.Save(ctx, sess))
		require.NoError(t, s.sessions.Delete(ctx, sess.ID()))

		err = s.sessions.Delete(ctx, sess.ID())
		assert.Equal(t, infra.KindNotFound, infra.KindOf(err))
	})

	s.Run("Normal case: ping", func() {
		require.NoError(s.T(), s.sessions.Ping(ctx))
	})
}
