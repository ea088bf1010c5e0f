//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Tests run against the PostgreSQL server named by PHONESTORE_DATABASE_URL
// (or DATABASE_URL) and are skipped when neither is set. The schema is
// applied once per connection with goose from internal/platform/postgres/migrations,
// and each test runs in its own transaction that is rolled back when the
// test completes, so tests can seed data freely and run in parallel.
//
// Basic usage:
//
//	func TestCatalog(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.SetupTestDatabaseSchema(t, db)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	        s := postgres.NewPostgresCatalogStore(tx, nil)
//	        // seed with tx.MustExec, then query through s
//	    })
//	}
package testdb
