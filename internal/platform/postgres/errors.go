package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/phonestore-api/internal/store"
)

// Error kinds reported by Classify. They only ever reach the logs; callers
// of the store see store.ErrBackend for all of them.
const (
	KindNotFound   = "not_found"
	KindTimeout    = "timeout"
	KindCanceled   = "canceled"
	KindQuery      = "query"
	KindConnection = "connection"
	KindUnknown    = "unknown"
)

// PostgreSQL error classes that indicate the server could not be reached or
// refused the session.
const (
	connectionExceptionClass = "08"
	insufficientResources    = "53"
	operatorIntervention     = "57"
)

// MapError wraps a failed query as a store.ErrBackend carrying the original
// cause. The catalog reads use SelectContext, which reports an empty result
// as zero rows rather than sql.ErrNoRows, so absence is decided by the
// caller and never reaches this function.
func MapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}
	return store.NewBackendError(entity, operation, err)
}

// Classify names the kind of a driver error for structured logging.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, sql.ErrNoRows):
		return KindNotFound
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, sql.ErrConnDone):
		return KindConnection
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case connectionExceptionClass, insufficientResources, operatorIntervention:
			return KindConnection
		default:
			return KindQuery
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return KindConnection
	}

	return KindUnknown
}

// SQLState returns the PostgreSQL error code carried by err, or "".
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
