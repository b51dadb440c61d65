package domain

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrNotFound = errors.New("not found")
var ErrStore = errors.New("store failure")
var ErrActionInFlight = errors.New("action already in progress")

var ErrMedicationNotFound = fmt.Errorf("medication %w", ErrNotFound)
var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
var ErrNoSession = fmt.Errorf("session %w", ErrNotFound)

// Invalid returns an ErrValidation wrapping the given detail.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
