package registry

// error_response.go maps registry errors to the error body returned to the
// client: a JSON object with a single human-readable "detail" field.

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mergington-high/activities/internal/logger"
)

// ErrorResponse is the error body returned by the activities API.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure
	Detail string `json:"detail"`
}

// MapErrorToResponse maps a *RegistryError (or a generic error) to an HTTP
// status code and an ErrorResponse.
//
// Call this to set up the error response before sending it to the client
// (using RespondWithErrorResponse).
func MapErrorToResponse(err error, r *http.Request) (int, *ErrorResponse) {
	var regErr *RegistryError
	if errors.As(err, &regErr) {
		return errorResponseFromRegistry(regErr)
	}

	// fallback - not expected; if it happens, return an internal error
	// response and log the unmapped error
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	return http.StatusInternalServerError, &ErrorResponse{Detail: "An internal error occurred"}
}

// errorResponseFromRegistry maps the registry error codes to HTTP statuses.
//
// Unknown activities are NotFound (404); the two precondition conflicts
// (duplicate signup, unregistering a non-participant) surface as 400 with the
// registry's detail message.
func errorResponseFromRegistry(err *RegistryError) (int, *ErrorResponse) {
	var statusCode int

	switch err.Code() {
	case ErrCodeActivityNotFound:
		statusCode = http.StatusNotFound
	case ErrCodeAlreadySignedUp:
		statusCode = http.StatusBadRequest
	case ErrCodeNotRegistered:
		statusCode = http.StatusBadRequest
	case ErrCodeMalformedRequest:
		statusCode = http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		statusCode = http.StatusTooManyRequests
	case ErrCodeRequestTooLarge:
		statusCode = http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError, &ErrorResponse{Detail: "An internal error occurred"}
	}

	return statusCode, &ErrorResponse{Detail: err.Error()}
}
