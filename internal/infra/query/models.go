package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Billboards struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	HourlyRate        int64              `json:"hourly_rate"`
	ImpressionsPerDay int64              `json:"impressions_per_day"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type Bookings struct {
	ID            uuid.UUID          `json:"id"`
	BillboardID   uuid.UUID          `json:"billboard_id"`
	BookingDate   pgtype.Date        `json:"booking_date"`
	StartHour     int16              `json:"start_hour"`
	EndHour       int16              `json:"end_hour"`
	Status        string             `json:"status"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone"`
	TotalAmount   int64              `json:"total_amount"`
	Notes         pgtype.Text        `json:"notes"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}
