package shipment

import (
	"errors"
	"fmt"

	"envios/internal/entities"
	"envios/internal/service/lifecycle"
	"envios/internal/service/pricing"
)

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidShipmentID      = errors.New("invalid shipment ID")
	ErrInvalidNationalID      = errors.New("national ID must contain digits only")
	ErrInvalidOperationNumber = errors.New("operation number must contain digits only")
	ErrUnauthenticated        = errors.New("not authenticated")
	ErrForbidden              = errors.New("administrator role required")
	ErrNotEditable            = errors.New("shipment is no longer editable")
	ErrShipmentNotFound       = errors.New("shipment not found")
	ErrRejected               = errors.New("request rejected by the envios service")
	ErrUpstreamUnavailable    = errors.New("envios service unavailable")
	ErrInFlight               = errors.New("request already in flight")
)

// Errors raised by the pricing engine and the lifecycle tracker, re-exported
// so callers only depend on this package.
var (
	ErrInvalidWeight      = pricing.ErrInvalidWeight
	ErrUnknownDestination = pricing.ErrUnknownDestination
	ErrUnknownStatus      = lifecycle.ErrUnknownStatus
	ErrTerminalStatus     = lifecycle.ErrTerminalStatus
	ErrBackwardTransition = lifecycle.ErrBackwardTransition
)

// remoteError tags a failure of the envíos API with this package's errors so
// handlers never look at upstream status codes.
func remoteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrRemoteNotFound):
		return fmt.Errorf("%w: %w", ErrShipmentNotFound, err)
	case errors.Is(err, entities.ErrRemoteUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case errors.Is(err, entities.ErrRemoteRejected):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	case errors.Is(err, entities.ErrRemoteUnavailable):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	default:
		return err
	}
}
