package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Auth errors
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Password reset errors
var (
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
)

// Booking errors
var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique tracking code")
)

// ValidationError reports every offending field of a request at once, not
// only the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError returns nil when no fields are missing.
func NewValidationError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
