package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and the delivery layer.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("unauthorized")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError names the first input rule that was violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// PublicMessage returns the text of err that is safe to show to the user. Errors outside the
// taxonomy above are backend failures and collapse to a generic message.
func PublicMessage(err error) string {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, ErrUnauthenticated):
		return "not authenticated"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, ErrForbidden):
		return "unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrDuplicateEmail):
		return "email already registered"
	default:
		return "internal server error"
	}
}
