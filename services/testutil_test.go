package services

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"fitchallengeAPI/internal/database"
)

// setupTestDB connects to the test database and ensures the schema exists.
// Tests that need Postgres skip when neither TEST_DATABASE_URL nor
// DATABASE_URL is set, so the pure unit tests still run anywhere.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL or DATABASE_URL not set; skipping database test")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, dbURL)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, pool))

	t.Cleanup(pool.Close)
	return pool
}
