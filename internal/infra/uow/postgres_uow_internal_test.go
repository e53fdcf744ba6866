//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"billboard-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	deadlock := errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "insert booking")
	exclusion := &pgconn.PgError{Code: "23P01"}

	assert.True(t, shouldRetry(serialization, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(serialization, 3, 3))
	assert.False(t, shouldRetry(exclusion, 0, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
