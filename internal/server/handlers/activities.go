package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington-high/activities/internal/logger"
	"github.com/mergington-high/activities/internal/registry"
)

// HandleListActivities godoc
//
//	@Summary		List activities
//	@Description	Returns the full mapping of activity name to activity record.
//	@Tags			Activities
//	@Produce		json
//	@Success		200	{object}	map[string]registry.Activity
//	@Router			/activities [get]
func HandleListActivities(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registry.RespondWithJSONPayload(w, http.StatusOK, reg.List())
	}
}

// HandleSignup godoc
//
//	@Summary		Sign up for an activity
//	@Description	Registers a student for the named activity by email.
//	@Tags			Activities
//	@Produce		json
//	@Param			activityName	path		string	true	"Activity name"
//	@Param			email			query		string	true	"Student email"
//	@Success		200				{object}	registry.MessageResponse
//	@Failure		400				{object}	registry.ErrorResponse	"Missing email or student already signed up"
//	@Failure		404				{object}	registry.ErrorResponse	"Activity not found"
//	@Router			/activities/{activityName}/signup [post]
func HandleSignup(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityName := activityNameParam(r)

		email := r.URL.Query().Get("email")
		if email == "" {
			registry.RespondWithErrorResponse(w, r,
				registry.NewMalformedRequestError("email query parameter is required"))
			return
		}

		if err := reg.Signup(activityName, email); err != nil {
			registry.RespondWithErrorResponse(w, r, err)
			return
		}

		reqLogger := logger.ContextRequestLogger(r.Context())
		reqLogger.Info("student signed up",
			slog.String("activity", activityName),
			slog.String("email", email),
		)

		registry.RespondWithJSONPayload(w, http.StatusOK, registry.MessageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
		})
	}
}

// HandleUnregister godoc
//
//	@Summary		Unregister from an activity
//	@Description	Removes a student from the named activity by email.
//	@Tags			Activities
//	@Produce		json
//	@Param			activityName	path		string	true	"Activity name"
//	@Param			email			query		string	true	"Student email"
//	@Success		200				{object}	registry.MessageResponse
//	@Failure		400				{object}	registry.ErrorResponse	"Missing email or student not registered"
//	@Failure		404				{object}	registry.ErrorResponse	"Activity not found"
//	@Router			/activities/{activityName}/unregister [post]
func HandleUnregister(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityName := activityNameParam(r)

		email := r.URL.Query().Get("email")
		if email == "" {
			registry.RespondWithErrorResponse(w, r,
				registry.NewMalformedRequestError("email query parameter is required"))
			return
		}

		if err := reg.Unregister(activityName, email); err != nil {
			registry.RespondWithErrorResponse(w, r, err)
			return
		}

		reqLogger := logger.ContextRequestLogger(r.Context())
		reqLogger.Info("student unregistered",
			slog.String("activity", activityName),
			slog.String("email", email),
		)

		registry.RespondWithJSONPayload(w, http.StatusOK, registry.MessageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
		})
	}
}

// activityNameParam extracts the activity name path parameter.
// chi leaves percent-encoded segments (e.g. "Chess%20Club") encoded when the
// request URL carries a RawPath, so the value is unescaped here.
func activityNameParam(r *http.Request) string {
	raw := chi.URLParam(r, "activityName")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
