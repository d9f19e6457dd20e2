package registry

// responses.go provides helper functions for sending HTTP responses from the
// activities API handlers.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mergington-high/activities/internal/logger"
)

// MessageResponse is the success body returned by the signup and unregister
// endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithErrorResponse sends an error response as a JSON payload.
//
// It logs the error server-side and sends the mapped {"detail": ...} body to
// the client.
func RespondWithErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, errorResponse := MapErrorToResponse(err, r)

	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Warn("request failed",
		slog.String("error", err.Error()),
		slog.Int("status_code", statusCode),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	RespondWithJSONPayload(w, statusCode, errorResponse)
}

// RespondWithJSONPayload sends a JSON response with the given status code.
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// If encoding fails, log it but don't try to send another
			// response (headers are already written)
			slog.Error("failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}
