package lifecycle

import "errors"

var (
	ErrUnknownStatus      = errors.New("unknown status")
	ErrUnknownPolicy      = errors.New("unknown transition policy")
	ErrTerminalStatus     = errors.New("shipment is in a terminal status")
	ErrBackwardTransition = errors.New("status transition goes backwards")
)
