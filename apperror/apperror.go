// Package apperror defines a centralized system for application-specific errors.
// Every handler returns (or writes) one of these so that the HTTP status code and the
// JSON error body are decided in one place instead of being repeated per route.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is the category of an application error. It alone decides the HTTP status.
type ErrorType int

const (
	UnknownError ErrorType = iota
	// DatabaseError wraps a failed store operation.
	DatabaseError
	// ConfigError reports unusable startup configuration.
	ConfigError
	// UnauthenticatedError means no credential was presented.
	UnauthenticatedError
	// ForbiddenError means a credential was presented but rejected.
	ForbiddenError
	// NotFoundError covers both "does not exist" and "exists but belongs to someone else".
	NotFoundError
	// ValidationError is a request body or query that failed shape validation.
	ValidationError
	BadRequestError
	InternalError
	// ConflictError is a duplicate registration.
	ConflictError
	// TimeoutError is a request that ran past its deadline before answering.
	TimeoutError
)

// statusByType maps each category onto its response status. Missing types answer 500.
// A duplicate signup is answered like a rejected credential.
var statusByType = map[ErrorType]int{
	UnauthenticatedError: http.StatusUnauthorized,
	ForbiddenError:       http.StatusForbidden,
	ConflictError:        http.StatusForbidden,
	NotFoundError:        http.StatusNotFound,
	ValidationError:      http.StatusBadRequest,
	BadRequestError:      http.StatusBadRequest,
	TimeoutError:         http.StatusGatewayTimeout,
}

// FieldError describes a single invalid field in a request body.
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"title is required"`
}

// AppError carries an underlying error (`Err`) for the logs while only `Message`
// (and `Details` for validation failures) ever reaches the client.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
	Details []FieldError
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes Err to `errors.Is` and `errors.As`.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for e.Type.
func (e *AppError) StatusCode() int {
	if status, ok := statusByType[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NewAppError is the generic constructor behind the typed ones below.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlyingError}
}

func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewUnauthenticatedError is the 401 used when no credential came with the request.
func NewUnauthenticatedError(message string, underlyingError error) *AppError {
	return NewAppError(UnauthenticatedError, message, underlyingError)
}

// NewForbiddenError is the 403 used for a rejected token or wrong password.
func NewForbiddenError(message string, underlyingError error) *AppError {
	return NewAppError(ForbiddenError, message, underlyingError)
}

func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError builds a 400 listing every offending field.
func NewValidationError(message string, details []FieldError) *AppError {
	return &AppError{Type: ValidationError, Message: message, Details: details}
}

func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

func NewTimeoutError(message string, underlyingError error) *AppError {
	return NewAppError(TimeoutError, message, underlyingError)
}

func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// ErrorResponse represents the error payload sent to API clients.
type ErrorResponse struct {
	Message string       `json:"message" example:"A description of the error"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse suitable for API responses.
// Only the user-facing `Message` is included, never the underlying `Err`.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message, Errors: e.Details}
}

// FromError converts err into an *AppError if one is anywhere in its chain.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func isType(err error, t ErrorType) bool {
	appErr, ok := FromError(err)
	return ok && appErr.Type == t
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

func IsForbidden(err error) bool { return isType(err, ForbiddenError) }

func IsValidationError(err error) bool { return isType(err, ValidationError) }

func IsConflictError(err error) bool { return isType(err, ConflictError) }
