//go:build integration

package testdb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// migrationTableName is the goose version table used by tests.
const migrationTableName = "schema_migrations"

// testGooseLogger routes goose output through the test log.
type testGooseLogger struct {
	t *testing.T
}

func (l *testGooseLogger) Printf(format string, v ...interface{}) {
	l.t.Logf(format, v...)
}

func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatalf(format, v...)
}

// FindProjectRoot walks up from the working directory to the directory
// holding go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// MigrationsDir returns the absolute path of the catalog schema migrations.
func MigrationsDir() (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "internal", "platform", "postgres", "migrations"), nil
}

// SetupTestDatabaseSchema brings the test database schema up to date.
func SetupTestDatabaseSchema(t *testing.T, db *sqlx.DB) {
	t.Helper()

	dir, err := MigrationsDir()
	if err != nil {
		t.Fatalf("failed to locate migrations: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("migrations directory %s: %v", dir, err)
	}

	goose.SetLogger(&testGooseLogger{t: t})
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
}
