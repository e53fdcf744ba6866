//go:build unit || e2e

package builder

import (
	"time"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID            uuid.UUID
	ResourceID    uuid.UUID
	Date          schedule.Date
	Start         int
	End           int
	Status        booking.Status
	HourlyRate    int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		ResourceID:    uuid.New(),
		Date:          schedule.DateOf(now).AddDays(7),
		Start:         9,
		End:           12,
		Status:        booking.StatusConfirmed,
		HourlyRate:    20,
		CustomerName:  "Jane Roe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "5551234567",
		Notes:         "spring launch",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) interval() schedule.Interval {
	return schedule.Interval{Start: b.Start, End: b.End}
}

func (b *BookingBuilder) total() int64 {
	return b.HourlyRate * int64(b.End-b.Start)
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	amount, _ := booking.NewMoney(b.total())
	return booking.ReconstructBooking(
		b.ID,
		b.ResourceID,
		b.Date,
		b.interval(),
		b.Status,
		booking.ReconstructCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone),
		amount,
		booking.NewNote(b.Notes),
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildDraft() (booking.Draft, error) {
	rate, err := booking.NewMoney(b.HourlyRate)
	if err != nil {
		return booking.Draft{}, err
	}
	customer, err := booking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return booking.Draft{}, err
	}
	return booking.NewDraft(booking.NewHourlyPriceCalculator(), b.ResourceID, b.Date, b.interval(), rate, customer, booking.NewNote(b.Notes))
}

func (b *BookingBuilder) BuildInfra() query.Bookings {
	return query.Bookings{
		ID:            b.ID,
		BillboardID:   b.ResourceID,
		BookingDate:   pgtype.Date{Time: b.Date.Time(), Valid: true},
		StartHour:     int16(b.Start),
		EndHour:       int16(b.End),
		Status:        b.Status.String(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TotalAmount:   b.total(),
		Notes:         pgtype.Text{String: b.Notes, Valid: b.Notes != ""},
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}
