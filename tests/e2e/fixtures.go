//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"billboard-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// ResetState empties the ledger and drops this process's sessions.
func ResetState(pool *pgxpool.Pool, client *redis.Client, keyPrefix string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE bookings, billboards RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	iter := client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func CreateTestBillboard(t *testing.T, pool *pgxpool.Pool, name string, hourlyRate, impressionsPerDay int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO billboards (name, hourly_rate, impressions_per_day) VALUES ($1, $2, $3) RETURNING id`,
		name, hourlyRate, impressionsPerDay,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestBooking(t *testing.T, pool *pgxpool.Pool, billboardID uuid.UUID, date schedule.Date, start, end int, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO bookings (billboard_id, booking_date, start_hour, end_hour, status,
			customer_name, customer_email, customer_phone, total_amount)
		 VALUES ($1, $2, $3, $4, $5, 'Existing Customer', 'existing@example.com', '5550000000', 0)
		 RETURNING id`,
		billboardID, date.Time(), start, end, status,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

type BookingRow struct {
	ID          uuid.UUID
	Date        schedule.Date
	StartHour   int
	EndHour     int
	Status      string
	TotalAmount int64
	Phone       string
	Notes       *string
}

func ListBookingRows(t *testing.T, pool *pgxpool.Pool, billboardID uuid.UUID) []BookingRow {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		`SELECT id, booking_date, start_hour, end_hour, status, total_amount, customer_phone, notes
		 FROM bookings WHERE billboard_id = $1 ORDER BY booking_date, start_hour`,
		billboardID,
	)
	require.NoError(t, err)
	defer rows.Close()

	var out []BookingRow
	for rows.Next() {
		var (
			r          BookingRow
			day        time.Time
			start, end int16
		)
		require.NoError(t, rows.Scan(&r.ID, &day, &start, &end, &r.Status, &r.TotalAmount, &r.Phone, &r.Notes))
		r.Date = schedule.DateOf(day)
		r.StartHour, r.EndHour = int(start), int(end)
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

// FutureDate returns a date n days after today (UTC).
func FutureDate(n int) schedule.Date {
	return schedule.DateOf(time.Now().UTC()).AddDays(n)
}
