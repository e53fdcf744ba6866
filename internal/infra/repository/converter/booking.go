package converter

import (
	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/infra/query"
	"billboard-booking/internal/pkg/pgconv"
)

func DraftToInfra(d booking.Draft) query.CreateBookingParams {
	return query.CreateBookingParams{
		BillboardID:   d.ResourceID,
		BookingDate:   pgconv.DateToPgtype(d.Date),
		StartHour:     int16(d.Interval.Start), // #nosec G115 -- hours are bounded by the operating window
		EndHour:       int16(d.Interval.End),   // #nosec G115
		Status:        d.Status.String(),
		CustomerName:  d.Customer.Name(),
		CustomerEmail: d.Customer.Email(),
		CustomerPhone: d.Customer.Phone(),
		TotalAmount:   d.TotalAmount.Amount(),
		Notes:         pgconv.StringToNullableText(d.Notes.String()),
	}
}

func BookingFromInfra(row query.Bookings) (*booking.Booking, error) {
	amount, err := booking.NewMoney(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.BillboardID,
		pgconv.DateFromPgtype(row.BookingDate),
		schedule.Interval{Start: int(row.StartHour), End: int(row.EndHour)},
		booking.Status(row.Status),
		booking.ReconstructCustomer(row.CustomerName, row.CustomerEmail, row.CustomerPhone),
		amount,
		booking.NewNote(pgconv.StringFromPgtype(row.Notes)),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
