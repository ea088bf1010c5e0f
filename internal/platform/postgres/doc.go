// Package postgres provides the PostgreSQL implementation of the catalog
// query gateway defined in internal/store, together with the connection
// pool lifecycle. Rows are decoded through sqlx into declared row structs so
// that the Go type of every selected column is fixed in one place.
package postgres
