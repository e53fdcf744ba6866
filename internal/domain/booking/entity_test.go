//go:build unit

package booking_test

import (
	"testing"
	"time"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewDraft(t *testing.T) {
	calc := booking.NewHourlyPriceCalculator()
	resourceID := uuid.New()
	date := schedule.MustParseDate("2025-03-14")
	customer := booking.ReconstructCustomer("Jane Roe", "jane@example.com", "5551234567")
	rate := mustMoney(t, 20)

	t.Run("total is rate times duration", func(t *testing.T) {
		draft, err := booking.NewDraft(calc, resourceID, date, schedule.Interval{Start: 9, End: 12}, rate, customer, booking.NewNote(" launch "))
		require.NoError(t, err)
		assert.Equal(t, int64(60), draft.TotalAmount.Amount())
		assert.Equal(t, booking.StatusConfirmed, draft.Status)
		assert.Equal(t, "launch", draft.Notes.String())
	})

	t.Run("rejects empty interval", func(t *testing.T) {
		_, err := booking.NewDraft(calc, resourceID, date, schedule.Interval{Start: 12, End: 12}, rate, customer, booking.Note{})
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("rejects missing resource", func(t *testing.T) {
		_, err := booking.NewDraft(calc, uuid.Nil, date, schedule.Interval{Start: 9, End: 10}, rate, customer, booking.Note{})
		assert.ErrorIs(t, err, booking.ErrEmptyResourceID)
	})

	t.Run("rejects missing date", func(t *testing.T) {
		_, err := booking.NewDraft(calc, resourceID, schedule.Date{}, schedule.Interval{Start: 9, End: 10}, rate, customer, booking.Note{})
		assert.ErrorIs(t, err, booking.ErrMissingDate)
	})
}

func TestMoney(t *testing.T) {
	_, err := booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativeMoney)

	m := mustMoney(t, 20)
	assert.Equal(t, int64(80), m.Times(4).Amount())
	assert.Equal(t, int64(40), m.Add(m).Amount())
	assert.True(t, booking.Money{}.IsZero())
}

func TestBookingOccupancy(t *testing.T) {
	id := uuid.New()
	b := booking.ReconstructBooking(
		id, uuid.New(), schedule.MustParseDate("2025-03-14"), schedule.Interval{Start: 14, End: 15},
		booking.StatusConfirmed, booking.Customer{}, mustMoney(t, 20), booking.Note{}, testNow, testNow,
	)
	assert.True(t, b.IsActive())
	assert.False(t, b.IsCanceled())
	assert.Equal(t, 14, b.StartHour())
	assert.Equal(t, 15, b.EndHour())
	assert.Equal(t, schedule.Occupancy{BookingID: id, Interval: schedule.Interval{Start: 14, End: 15}}, b.Occupancy())
}

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
