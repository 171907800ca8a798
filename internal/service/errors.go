package service

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers translate these to HTTP statuses; anything else is a
// generic internal failure.
var (
	// ErrUnauthorized covers every credential and session failure: bad login,
	// missing token, unknown token, expired token. Callers must not be able to
	// tell which one happened.
	ErrUnauthorized = errors.New("username or password wrong")

	ErrContactNotFound = errors.New("contact not found")
	ErrAddressNotFound = errors.New("address not found")

	ErrUsernameTaken = errors.New("username already registered")

	// ErrValidation marks field-constraint failures; the wrapped detail lists
	// every violated constraint.
	ErrValidation = errors.New("validation failed")
)

func validationError(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}
