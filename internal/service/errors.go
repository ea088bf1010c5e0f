package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/phonestore-api/internal/store"
)

// Sentinel errors returned by the catalog service. Callers check for them
// with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrProductNotFound indicates that no active product has the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrProductNotFound = errors.New("product not found")

	// ErrBackendFailure indicates that a catalog query could not be completed.
	// API layer should map this to HTTP 500 with a generic message.
	ErrBackendFailure = errors.New("catalog backend failure")
)

// CatalogServiceError wraps errors from the catalog service with context.
type CatalogServiceError struct {
	// Operation is the operation that failed (e.g., "list_products")
	Operation string
	// Kind is the service sentinel the error classifies as
	Kind error
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %v: %v", e.Operation, e.Kind, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %v", e.Operation, e.Kind)
}

// Unwrap exposes both the kind and the cause to errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewCatalogServiceError classifies a store error. store.ErrProductNotFound
// becomes ErrProductNotFound; everything else, including a not-found for any
// other entity, is an ErrBackendFailure.
// The store cause stays reachable through the returned error.
func NewCatalogServiceError(operation string, err error) error {
	if err == nil {
		return nil
	}

	kind := ErrBackendFailure
	if errors.Is(err, store.ErrProductNotFound) {
		kind = ErrProductNotFound
	}

	return &CatalogServiceError{
		Operation: operation,
		Kind:      kind,
		Err:       err,
	}
}
