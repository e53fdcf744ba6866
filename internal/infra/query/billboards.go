package query

import (
	"context"

	"github.com/google/uuid"
)

const getBillboardByID = `
SELECT id, name, hourly_rate, impressions_per_day, created_at, updated_at
FROM billboards
WHERE id = $1
`

func (q *Queries) GetBillboardByID(ctx context.Context, db DBTX, id uuid.UUID) (Billboards, error) {
	row := db.QueryRow(ctx, getBillboardByID, id)
	var i Billboards
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.HourlyRate,
		&i.ImpressionsPerDay,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBillboard = `
INSERT INTO billboards (name, hourly_rate, impressions_per_day)
VALUES ($1, $2, $3)
RETURNING id
`

type CreateBillboardParams struct {
	Name              string `json:"name"`
	HourlyRate        int64  `json:"hourly_rate"`
	ImpressionsPerDay int64  `json:"impressions_per_day"`
}

// CreateBillboard is used by fixtures and seeding only; the booking engine
// never writes billboards.
func (q *Queries) CreateBillboard(ctx context.Context, db DBTX, arg CreateBillboardParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBillboard, arg.Name, arg.HourlyRate, arg.ImpressionsPerDay)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
