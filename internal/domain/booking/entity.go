package booking

import (
	"errors"
	"time"

	"billboard-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceID = errors.New("resource id is required")
	ErrMissingDate     = errors.New("booking date is required")
	ErrAmountMismatch  = errors.New("total amount does not match hourly rate and duration")
)

// Draft is a booking not yet persisted. The store assigns identity and timestamps.
type Draft struct {
	ResourceID  uuid.UUID
	Date        schedule.Date
	Interval    schedule.Interval
	Customer    Customer
	Status      Status
	TotalAmount Money
	Notes       Note
}

// NewDraft builds a confirmed draft whose total is hourlyRate × interval hours.
func NewDraft(
	calc PriceCalculator,
	resourceID uuid.UUID,
	date schedule.Date,
	iv schedule.Interval,
	hourlyRate Money,
	customer Customer,
	notes Note,
) (Draft, error) {
	if resourceID == uuid.Nil {
		return Draft{}, ErrEmptyResourceID
	}
	if date.IsZero() {
		return Draft{}, ErrMissingDate
	}
	if _, err := schedule.NewInterval(iv.Start, iv.End); err != nil {
		return Draft{}, err
	}

	total := calc.CalculateTotal(hourlyRate, iv)
	if total != hourlyRate.Times(iv.Hours()) {
		return Draft{}, ErrAmountMismatch
	}

	return Draft{
		ResourceID:  resourceID,
		Date:        date,
		Interval:    iv,
		Customer:    customer,
		Status:      StatusConfirmed,
		TotalAmount: total,
		Notes:       notes,
	}, nil
}

type Booking struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	date        schedule.Date
	interval    schedule.Interval
	status      Status
	customer    Customer
	totalAmount Money
	notes       Note
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructBooking(
	id, resourceID uuid.UUID,
	date schedule.Date,
	iv schedule.Interval,
	status Status,
	customer Customer,
	totalAmount Money,
	notes Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		resourceID:  resourceID,
		date:        date,
		interval:    iv,
		status:      status,
		customer:    customer,
		totalAmount: totalAmount,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCanceled() bool {
	return b.status == StatusCanceled
}

// Occupancy is the grid's view of an active booking.
func (b *Booking) Occupancy() schedule.Occupancy {
	return schedule.Occupancy{BookingID: b.id, Interval: b.interval}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) ResourceID() uuid.UUID       { return b.resourceID }
func (b *Booking) Date() schedule.Date         { return b.date }
func (b *Booking) Interval() schedule.Interval { return b.interval }
func (b *Booking) StartHour() int              { return b.interval.Start }
func (b *Booking) EndHour() int                { return b.interval.End }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Customer() Customer          { return b.customer }
func (b *Booking) TotalAmount() Money          { return b.totalAmount }
func (b *Booking) Notes() Note                 { return b.notes }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
