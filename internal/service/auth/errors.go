package auth

import (
	"errors"
	"fmt"

	"envios/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUnauthenticated       = errors.New("no session token")
	ErrSessionNotFound       = errors.New("session not found")
	ErrSessionConflict       = errors.New("session already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrRegistrationRejected  = errors.New("registration rejected")
	ErrUpstreamUnavailable   = errors.New("accounts service unavailable")
	ErrInFlight              = errors.New("request already in flight")
)

// RejectedError keeps the explanation the accounts service gave for
// refusing a registration.
type RejectedError struct {
	Message string
	Cause   error
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", ErrRegistrationRejected, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRegistrationRejected, e.Message)
}

func (e *RejectedError) Unwrap() []error {
	return []error{ErrRegistrationRejected, e.Cause}
}

func RejectionMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	return ""
}

func loginError(err error) error {
	switch {
	case errors.Is(err, entities.ErrRemoteUnauthorized),
		errors.Is(err, entities.ErrRemoteNotFound),
		errors.Is(err, entities.ErrRemoteRejected):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	case errors.Is(err, entities.ErrRemoteUnavailable):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	default:
		return err
	}
}

func registerError(err error) error {
	switch {
	case errors.Is(err, entities.ErrRemoteRejected), errors.Is(err, entities.ErrRemoteUnauthorized):
		return &RejectedError{Message: entities.RemoteMessage(err), Cause: err}
	case errors.Is(err, entities.ErrRemoteNotFound), errors.Is(err, entities.ErrRemoteUnavailable):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	default:
		return err
	}
}
