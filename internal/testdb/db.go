//go:build integration

package testdb

import (
	"context"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/phonestore-api/internal/redact"
)

// TestTimeout bounds connection checks made by this package.
const TestTimeout = 5 * time.Second

// Environment variables consulted for the test database, in order.
var databaseURLEnvVars = []string{"PHONESTORE_DATABASE_URL", "DATABASE_URL"}

// GetTestDatabaseURL returns the first non-empty database URL from the
// environment, or "".
func GetTestDatabaseURL() string {
	for _, name := range databaseURLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// GetTestDBWithT opens a pool to the test database and registers its Close
// with t.Cleanup. The test is skipped when no database is configured.
func GetTestDBWithT(t *testing.T) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("PHONESTORE_DATABASE_URL not set - skipping integration test")
	}

	db, err := sqlx.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database: %s", redact.Error(err))
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %s", redact.Error(err))
	}

	return db
}
