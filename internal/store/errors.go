package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrBackend is returned when the underlying database fails for any reason
	// (connectivity, query, timeout, scan). The driver error is wrapped.
	ErrBackend = errors.New("backend failure")

	// ErrProductNotFound indicates that no active product has the requested ID.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a store error with the entity and operation that failed.
type StoreError struct {
	Entity    string // The entity type (e.g., "product", "category")
	Operation string // The operation that failed (e.g., "list", "get")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewBackendError wraps a driver error so that it matches ErrBackend while
// keeping the original cause reachable through errors.As.
func NewBackendError(entity, operation string, err error) *StoreError {
	return NewStoreError(entity, operation, "query failed", fmt.Errorf("%w: %w", ErrBackend, err))
}
