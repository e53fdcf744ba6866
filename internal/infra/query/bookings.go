package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, billboard_id, booking_date, start_hour, end_hour, status,
       customer_name, customer_email, customer_phone, total_amount, notes,
       created_at, updated_at`

const listConfirmedBookings = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE billboard_id = $1
  AND booking_date BETWEEN $2 AND $3
  AND status = 'confirmed'
ORDER BY booking_date, start_hour
`

type ListConfirmedBookingsParams struct {
	BillboardID uuid.UUID   `json:"billboard_id"`
	FromDate    pgtype.Date `json:"from_date"`
	ToDate      pgtype.Date `json:"to_date"`
}

func (q *Queries) ListConfirmedBookings(ctx context.Context, db DBTX, arg ListConfirmedBookingsParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listConfirmedBookings, arg.BillboardID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		var i Bookings
		if err := scanBooking(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingByID = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i Bookings
	err := scanBooking(row, &i)
	return i, err
}

const createBooking = `
INSERT INTO bookings (
    billboard_id, booking_date, start_hour, end_hour, status,
    customer_name, customer_email, customer_phone, total_amount, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

type CreateBookingParams struct {
	BillboardID   uuid.UUID   `json:"billboard_id"`
	BookingDate   pgtype.Date `json:"booking_date"`
	StartHour     int16       `json:"start_hour"`
	EndHour       int16       `json:"end_hour"`
	Status        string      `json:"status"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	TotalAmount   int64       `json:"total_amount"`
	Notes         pgtype.Text `json:"notes"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.BillboardID,
		arg.BookingDate,
		arg.StartHour,
		arg.EndHour,
		arg.Status,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.TotalAmount,
		arg.Notes,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const cancelBooking = `
UPDATE bookings
SET status = 'canceled', updated_at = $2
WHERE id = $1 AND status = 'confirmed'
`

type CancelBookingParams struct {
	ID        uuid.UUID          `json:"id"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CancelBooking(ctx context.Context, db DBTX, arg CancelBookingParams) (int64, error) {
	result, err := db.Exec(ctx, cancelBooking, arg.ID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner, i *Bookings) error {
	return row.Scan(
		&i.ID,
		&i.BillboardID,
		&i.BookingDate,
		&i.StartHour,
		&i.EndHour,
		&i.Status,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.TotalAmount,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
