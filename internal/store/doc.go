// Package store defines the read-only persistence interface of the catalog.
// Implementations live under internal/platform; callers depend only on the
// interfaces and sentinel errors declared here.
package store
