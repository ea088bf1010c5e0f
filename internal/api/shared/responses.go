package shared

import (
	"fmt"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/phrazzld/phonestore-api/internal/platform/logger"
	"github.com/phrazzld/phonestore-api/internal/redact"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of server-side failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of client-facing outcomes such as a missing
// product.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	asMessage bool
}

// AsMessage makes RespondWithErrorAndLog use a {"message": ...} body instead
// of {"error": ...}.
func AsMessage() ResponseOption {
	return func(opts *responseOptions) {
		opts.asMessage = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// RespondWithError writes a {"error": message} response with the given status code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithMessage writes a {"message": message} response with the given status code.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithErrorAndLog writes a safe error response and logs the detailed
// error. The raw error never reaches the response body; in the logs it is
// redacted first.
//
// 5xx responses are logged at ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	if responseOpts.asMessage {
		RespondWithMessage(w, r, status, userMessage)
		return
	}
	RespondWithError(w, r, status, userMessage)
}
