package pricing

import "errors"

var (
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrUnknownDestination = errors.New("unknown destination")
)
