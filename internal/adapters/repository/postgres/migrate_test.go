package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	ups, err := MigrationNames(".up.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"000001_create_users.up.sql",
		"000002_create_bars.up.sql",
		"000003_create_votes.up.sql",
		"000004_create_visits.up.sql",
	}, ups)

	downs, err := MigrationNames(".down.sql")
	require.NoError(t, err)
	assert.Len(t, downs, 4)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Migrate(context.Background(), db))
}

func TestApplyMigration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	applied, err := ApplyMigration(ctx, db, "create_visits.down")
	require.NoError(t, err)
	assert.Equal(t, "000004_create_visits.down.sql", applied)

	var exists bool
	require.NoError(t, db.QueryRow(`SELECT to_regclass('public.visits') IS NOT NULL`).Scan(&exists))
	assert.False(t, exists)

	_, err = ApplyMigration(ctx, db, "create_visits.up")
	require.NoError(t, err)

	_, err = ApplyMigration(ctx, db, "nope")
	assert.ErrorContains(t, err, "not found")

	_, err = ApplyMigration(ctx, db, "create")
	assert.Error(t, err)
}

func TestDatabaseClock(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	today, err := NewDatabaseClock(db).Today(ctx)
	require.NoError(t, err)

	var want string
	require.NoError(t, db.QueryRow(`SELECT CURRENT_DATE::text`).Scan(&want))
	assert.Equal(t, want, today.String())
}
