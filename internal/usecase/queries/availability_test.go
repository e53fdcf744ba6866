//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/queries"
	"billboard-booking/tests/common/builder"
	sharedmock "billboard-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errLedgerDown = errors.New("ledger unreachable")

// =============================================================================
// Resolve Tests
// =============================================================================

func TestAvailability_Resolve(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	date := schedule.MustParseDate("2030-03-14")

	morning := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = resourceID
		b.Date = date
		b.Start, b.End = 9, 11
	}).BuildDomain()
	canceled := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = resourceID
		b.Date = date
		b.Start, b.End = 14, 16
		b.Status = booking.StatusCanceled
	}).BuildDomain()
	otherDay := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = resourceID
		b.Date = date.AddDays(1)
		b.Start, b.End = 18, 20
	}).BuildDomain()

	t.Run("success: confirmed bookings on the date block their hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockBookingStore(ctrl)
		store.EXPECT().GetBookings(ctx, resourceID, date, date).
			Return([]*booking.Booking{morning, canceled, otherDay}, nil)

		grid := queries.NewAvailabilityResolver(store, queries.FailOpen).Resolve(ctx, resourceID, date)

		assert.False(t, grid.Degraded())
		assert.Equal(t, 2, grid.BookedCount())
		assert.True(t, grid.IsBooked(9))
		assert.True(t, grid.IsBooked(10))
		assert.False(t, grid.IsBooked(11))
		assert.False(t, grid.IsBooked(14), "canceled bookings do not occupy the grid")
		assert.False(t, grid.IsBooked(18), "bookings on other dates are ignored")

		for _, slot := range grid.Slots() {
			if slot.Booked {
				require.NotNil(t, slot.BookingID)
				assert.Equal(t, morning.ID(), *slot.BookingID)
			}
		}
	})

	t.Run("success: no bookings yields a fully free grid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockBookingStore(ctrl)
		store.EXPECT().GetBookings(ctx, resourceID, date, date).Return(nil, nil)

		grid := queries.NewAvailabilityResolver(store, queries.FailClosed).Resolve(ctx, resourceID, date)

		assert.False(t, grid.Degraded())
		assert.Equal(t, 0, grid.BookedCount())
		assert.Len(t, grid.AvailableHours(), schedule.SlotsPerDay)
	})

	t.Run("degraded: fail-open shows every hour free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockBookingStore(ctrl)
		store.EXPECT().GetBookings(ctx, resourceID, date, date).Return(nil, errLedgerDown)

		grid := queries.NewAvailabilityResolver(store, queries.FailOpen).Resolve(ctx, resourceID, date)

		assert.True(t, grid.Degraded())
		assert.Equal(t, 0, grid.BookedCount())
		assert.Equal(t, date, grid.Date())
	})

	t.Run("degraded: fail-closed shows every hour booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockBookingStore(ctrl)
		store.EXPECT().GetBookings(ctx, resourceID, date, date).Return(nil, errLedgerDown)

		grid := queries.NewAvailabilityResolver(store, queries.FailClosed).Resolve(ctx, resourceID, date)

		assert.True(t, grid.Degraded())
		assert.Equal(t, schedule.SlotsPerDay, grid.BookedCount())
		assert.Empty(t, grid.AvailableHours())
	})

	t.Run("unknown policy falls back to fail-open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockBookingStore(ctrl)
		store.EXPECT().GetBookings(ctx, resourceID, date, date).Return(nil, errLedgerDown)

		grid := queries.NewAvailabilityResolver(store, "sideways").Resolve(ctx, resourceID, date)

		assert.True(t, grid.Degraded())
		assert.Equal(t, 0, grid.BookedCount())
	})
}

// =============================================================================
// ListBookings Tests
// =============================================================================

func TestAvailability_ListBookings(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	from := schedule.MustParseDate("2030-03-01")

	testCases := []struct {
		name        string
		to          schedule.Date
		setupMock   func(*sharedmock.MockBookingStore)
		expectLen   int
		expectError error
	}{
		{
			name: "success: bookings in range",
			to:   from.AddDays(30),
			setupMock: func(m *sharedmock.MockBookingStore) {
				b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.ResourceID = resourceID
					b.Date = from.AddDays(3)
				}).BuildDomain()
				m.EXPECT().GetBookings(ctx, resourceID, from, from.AddDays(30)).Return([]*booking.Booking{b}, nil)
			},
			expectLen: 1,
		},
		{
			name: "success: single day range",
			to:   from,
			setupMock: func(m *sharedmock.MockBookingStore) {
				m.EXPECT().GetBookings(ctx, resourceID, from, from).Return(nil, nil)
			},
			expectLen: 0,
		},
		{
			name: "success: range at the limit",
			to:   from.AddDays(queries.MaxBookingRangeDays),
			setupMock: func(m *sharedmock.MockBookingStore) {
				m.EXPECT().GetBookings(ctx, resourceID, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectLen: 0,
		},
		{
			name:        "error: to before from",
			to:          from.AddDays(-1),
			setupMock:   func(m *sharedmock.MockBookingStore) {},
			expectError: errs.ErrValidation,
		},
		{
			name:        "error: range exceeds the limit",
			to:          from.AddDays(queries.MaxBookingRangeDays + 1),
			setupMock:   func(m *sharedmock.MockBookingStore) {},
			expectError: errs.ErrValidation,
		},
		{
			name: "error: ledger unavailable",
			to:   from.AddDays(1),
			setupMock: func(m *sharedmock.MockBookingStore) {
				m.EXPECT().GetBookings(ctx, resourceID, gomock.Any(), gomock.Any()).Return(nil, errLedgerDown)
			},
			expectError: errs.ErrSystemUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := sharedmock.NewMockBookingStore(ctrl)
			tc.setupMock(store)

			views, err := queries.NewAvailabilityResolver(store, queries.FailOpen).ListBookings(ctx, resourceID, from, tc.to)

			if tc.expectError != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectError))
				return
			}
			require.NoError(t, err)
			assert.Len(t, views, tc.expectLen)
			for _, v := range views {
				assert.Equal(t, resourceID, v.ResourceID)
				assert.Equal(t, "confirmed", v.Status)
				assert.Equal(t, int64(60), v.TotalAmount)
			}
		})
	}
}
