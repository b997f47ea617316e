package migrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluelatex/blue-web/internal/migrate"
	"github.com/bluelatex/blue-web/internal/testutil"
)

func TestVersions(t *testing.T) {
	versions, err := migrate.Versions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "0001_preferences", versions[0])
	assert.IsNonDecreasing(t, versions)
}

func TestApply_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	applied, err := migrate.Apply(ctx, db, migrate.Options{})
	require.NoError(t, err)
	assert.Empty(t, applied, "SetupTestDB already migrated")

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM schema_migrations`).Scan(&n))
	versions, err := migrate.Versions()
	require.NoError(t, err)
	assert.Equal(t, len(versions), n)
}
