package service

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the data-access layer. Handlers map these onto HTTP
// status codes; anything wrapping ErrRemote is a backend/network failure.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("todo not found")
	ErrValidation         = errors.New("validation failed")
	ErrRemote             = errors.New("backend request failed")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func remoteError(err error) error {
	return fmt.Errorf("%w: %v", ErrRemote, err)
}
