package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/phonestore-api/internal/api/shared"
	"github.com/phrazzld/phonestore-api/internal/service"
	"github.com/phrazzld/phonestore-api/internal/store"
)

// Safe messages returned to clients.
const (
	MsgProductNotFound     = "Product not found"
	MsgDatabaseQueryFailed = "Database query failed"
	MsgUnexpectedError     = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, store.ErrProductNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgUnexpectedError
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, store.ErrProductNotFound):
		return MsgProductNotFound
	case errors.Is(err, service.ErrBackendFailure),
		errors.Is(err, store.ErrBackend):
		return MsgDatabaseQueryFailed
	default:
		return MsgUnexpectedError
	}
}

// HandleAPIError writes the response for a service error. Not-found errors
// get a {"message": ...} body, everything else an {"error": ...} body.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)

	if status == http.StatusNotFound {
		shared.RespondWithErrorAndLog(w, r, status, msg, err, shared.AsMessage())
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
