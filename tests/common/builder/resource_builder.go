//go:build unit || e2e

package builder

import (
	"time"

	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/domain/resource"
	"billboard-booking/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceBuilder struct {
	ID                uuid.UUID
	Name              string
	HourlyRate        int64
	ImpressionsPerDay int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Now()
	return &ResourceBuilder{
		ID:                uuid.New(),
		Name:              "Main Street Digital",
		HourlyRate:        20,
		ImpressionsPerDay: 1500,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(r.ID, r.Name, r.HourlyRate, r.ImpressionsPerDay, r.CreatedAt, r.UpdatedAt)
}

func (r *ResourceBuilder) BuildRef() campaign.ResourceRef {
	return campaign.ResourceRef{
		ID:                r.ID,
		Name:              r.Name,
		HourlyRate:        r.HourlyRate,
		ImpressionsPerDay: r.ImpressionsPerDay,
	}
}

func (r *ResourceBuilder) BuildInfra() query.Billboards {
	return query.Billboards{
		ID:                r.ID,
		Name:              r.Name,
		HourlyRate:        r.HourlyRate,
		ImpressionsPerDay: r.ImpressionsPerDay,
		CreatedAt:         pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}
