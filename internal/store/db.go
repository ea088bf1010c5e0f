package store

import "context"

// DBTX is the subset of *sqlx.DB (and *sqlx.Tx) used by store
// implementations. Accepting the interface keeps stores usable with a
// sqlmock-backed connection in tests.
type DBTX interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
