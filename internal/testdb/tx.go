//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
)

// WithTx runs fn inside a transaction that is always rolled back afterwards,
// including when fn panics.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.BeginTxx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
