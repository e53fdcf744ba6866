//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"billboard-booking/internal/infra"
	"billboard-booking/internal/infra/query"
	"billboard-booking/internal/infra/readstore"
	"billboard-booking/tests/common/builder"
	readstoremock "billboard-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	fixture := builder.NewResourceBuilder()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockResourceReadQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: billboard found",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetBillboardByID(ctx, gomock.Any(), id).Return(fixture.BuildInfra(), nil)
			},
			expectedError: false,
		},
		{
			name: "error: billboard not found",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetBillboardByID(ctx, gomock.Any(), id).Return(query.Billboards{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetBillboardByID(ctx, gomock.Any(), id).Return(query.Billboards{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
			store := readstore.NewResourceReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, fixture.ID)

			res, err := store.FindByID(ctx, fixture.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, fixture.ID, res.ID())
			assert.Equal(t, fixture.Name, res.Name())
			assert.Equal(t, fixture.HourlyRate, res.HourlyRate())
			assert.Equal(t, fixture.ImpressionsPerDay, res.ImpressionsPerDay())
			assert.WithinDuration(t, fixture.CreatedAt, res.CreatedAt(), 0)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
