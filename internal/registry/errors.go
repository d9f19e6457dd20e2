package registry

// errors.go defines the error codes used by the activities API

import "fmt"

// RegistryError represents a structured error from the registry package.
type RegistryError struct {
	// code identifies the failure class
	code ErrorCode

	// message is the human-readable detail returned to the client
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *RegistryError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *RegistryError) Code() ErrorCode { return e.code }
func (e *RegistryError) Unwrap() error   { return e.wrapped }

// ErrorCode is used in errors returned by the activities API.
type ErrorCode int

const (
	// ErrCodeActivityNotFound is used when the requested activity name is not
	// a key in the registry.
	ErrCodeActivityNotFound ErrorCode = iota + 1

	// ErrCodeAlreadySignedUp is used when a signup names an email that is
	// already a participant of the activity.
	ErrCodeAlreadySignedUp

	// ErrCodeNotRegistered is used when an unregister names an email that is
	// not currently a participant of the activity.
	ErrCodeNotRegistered

	// ErrCodeMalformedRequest is used when a request is missing a required
	// parameter or cannot be parsed.
	ErrCodeMalformedRequest

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge

	// ErrCodeInternalError is used when an internal server error occurs
	ErrCodeInternalError
)

// NewActivityNotFoundError creates the error returned when an activity name
// does not exist in the registry.
func NewActivityNotFoundError() error {
	return &RegistryError{code: ErrCodeActivityNotFound, message: "Activity not found"}
}

// NewAlreadySignedUpError creates the error returned when a student signs up
// for an activity they are already registered for.
func NewAlreadySignedUpError() error {
	return &RegistryError{code: ErrCodeAlreadySignedUp, message: "Student is already signed up"}
}

// NewNotRegisteredError creates the error returned when a student unregisters
// from an activity they are not registered for.
func NewNotRegisteredError() error {
	return &RegistryError{code: ErrCodeNotRegistered, message: "Student is not registered for this activity"}
}

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &RegistryError{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &RegistryError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
// Use this when the client has exceeded the rate limit.
func NewRateLimitError(msg string) error {
	return &RegistryError{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
// Use this when the request body exceeds the maximum allowed size.
func NewRequestTooLargeError(msg string) error {
	return &RegistryError{code: ErrCodeRequestTooLarge, message: msg}
}

// NewInternalError creates an internal error for unexpected failures.
func NewInternalError(msg string) error {
	return &RegistryError{code: ErrCodeInternalError, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
func WrapInternalError(err error, msg string) error {
	return &RegistryError{code: ErrCodeInternalError, message: msg, wrapped: err}
}
