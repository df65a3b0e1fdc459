package response

import (
	"errors"
	"net/http"

	"envios/internal/service/auth"
	"envios/internal/service/shipment"
)

// StatusOf maps service errors to HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, shipment.ErrMissingRequiredFields),
		errors.Is(err, shipment.ErrInvalidShipmentID),
		errors.Is(err, shipment.ErrInvalidNationalID),
		errors.Is(err, shipment.ErrInvalidOperationNumber),
		errors.Is(err, shipment.ErrInvalidWeight),
		errors.Is(err, shipment.ErrUnknownDestination),
		errors.Is(err, shipment.ErrUnknownStatus),
		errors.Is(err, shipment.ErrRejected),
		errors.Is(err, auth.ErrMissingRequiredFields),
		errors.Is(err, auth.ErrRegistrationRejected):
		return http.StatusBadRequest
	case errors.Is(err, shipment.ErrUnauthenticated),
		errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, shipment.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, shipment.ErrShipmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, shipment.ErrNotEditable),
		errors.Is(err, shipment.ErrTerminalStatus),
		errors.Is(err, shipment.ErrBackwardTransition),
		errors.Is(err, shipment.ErrInFlight),
		errors.Is(err, auth.ErrInFlight),
		errors.Is(err, auth.ErrSessionConflict):
		return http.StatusConflict
	case errors.Is(err, shipment.ErrUpstreamUnavailable),
		errors.Is(err, auth.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func clientMessage(err error) string {
	if message := auth.RejectionMessage(err); message != "" {
		return message
	}
	return err.Error()
}
