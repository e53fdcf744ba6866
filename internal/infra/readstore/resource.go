package readstore

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/readstore/mock_resource.go -package=readstoremock

import (
	"context"

	"billboard-booking/internal/domain/resource"
	"billboard-booking/internal/infra"
	"billboard-booking/internal/infra/query"
	"billboard-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetBillboardByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Billboards, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      query.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db query.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetBillboardByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	return toResourceFromRow(row), nil
}

func toResourceFromRow(row query.Billboards) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		row.HourlyRate,
		row.ImpressionsPerDay,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
