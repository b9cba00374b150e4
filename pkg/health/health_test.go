package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/health"
	"github.com/h809829-coder/agrosmart/pkg/testutil"
)

func TestChecker_Database(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := health.NewChecker().Register("database", health.Database(db))

	r := h.Run(context.Background())
	assert.True(t, r.Status.OK)
	assert.Equal(t, health.CheckResult{OK: true}, r.Checks["database"])
	assert.NotEmpty(t, r.Time)

	require.NoError(t, database.Close(db))
	r = h.Run(context.Background())
	assert.False(t, r.Status.OK)
	assert.False(t, r.Checks["database"].OK)
	assert.NotEmpty(t, r.Checks["database"].Err)
}

func TestChecker_NilDB(t *testing.T) {
	r := health.NewChecker().Register("database", health.Database(nil)).Run(context.Background())
	assert.False(t, r.Status.OK)
	assert.Equal(t, "gorm db is nil", r.Checks["database"].Err)
}

func TestChecker_DeadlineApplied(t *testing.T) {
	h := health.NewChecker().Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	r := h.Run(context.Background())
	assert.False(t, r.Status.OK)
	assert.Contains(t, r.Checks["slow"].Err, "deadline")
}

func TestChecker_ReRegisterReplaces(t *testing.T) {
	h := health.NewChecker().
		Register("x", func(context.Context) error { return errors.New("down") }).
		Register("x", func(context.Context) error { return nil })
	r := h.Run(context.Background())
	assert.True(t, r.Status.OK)
	assert.Len(t, r.Checks, 1)
}
