package entities

import "errors"

// Failure kinds of the remote envíos API. Gateways wrap them and each service
// translates them into its own errors.
var (
	ErrRemoteUnauthorized = errors.New("remote: unauthorized")
	ErrRemoteNotFound     = errors.New("remote: not found")
	ErrRemoteRejected     = errors.New("remote: request rejected")
	ErrRemoteUnavailable  = errors.New("remote: unavailable")
)

// RemoteMessage returns the explanation the remote API attached to err, if any.
func RemoteMessage(err error) string {
	var carrier interface{ RemoteMessage() string }
	if errors.As(err, &carrier) {
		return carrier.RemoteMessage()
	}
	return ""
}
