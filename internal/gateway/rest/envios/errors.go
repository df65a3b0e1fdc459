package envios

import (
	"errors"
	"fmt"
	"net/http"

	"envios/internal/entities"
)

var (
	ErrUnauthorized = entities.ErrRemoteUnauthorized
	ErrNotFound     = entities.ErrRemoteNotFound
	ErrRejected     = entities.ErrRemoteRejected
	ErrUnavailable  = entities.ErrRemoteUnavailable

	ErrMissingID = errors.New("envios api: missing shipment id")
)

// StatusError is a non-2xx answer from the remote API. Message carries the
// server supplied `message` field when there is one.
type StatusError struct {
	Code    int
	Message string
	Body    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return ErrUnauthorized
	case e.Code == http.StatusNotFound:
		return ErrNotFound
	case e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}

func (e *StatusError) RemoteMessage() string {
	return e.Message
}

// ServerMessage extracts the server supplied message from err, if any.
func ServerMessage(err error) string {
	return entities.RemoteMessage(err)
}
