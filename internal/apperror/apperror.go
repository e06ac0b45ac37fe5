package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the service distinguishes.
// Handlers map these to HTTP statuses; everything else is a 500.
var (
	ErrValidation         = errors.New("validation failed")
	ErrSlugExhausted      = errors.New("slug space exhausted")
	ErrExternalFetch      = errors.New("external fetch failed")
	ErrTokenRefreshFailed = errors.New("token refresh failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrPersistence        = errors.New("persistence failure")
)

// AppError pairs a sentinel with a human-readable message and an
// optional offending field.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func SlugExhausted(desired string, attempts int) *AppError {
	return &AppError{
		Err:     ErrSlugExhausted,
		Message: fmt.Sprintf("no free slug found for %q after %d attempts", desired, attempts),
		Field:   "slug",
	}
}

func NotFound(resource string, id any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func TokenRefresh(message string, cause error) *AppError {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &AppError{Err: ErrTokenRefreshFailed, Message: message}
}

func Persistence(op string, cause error) *AppError {
	return &AppError{
		Err:     ErrPersistence,
		Message: fmt.Sprintf("%s: %v", op, cause),
	}
}
