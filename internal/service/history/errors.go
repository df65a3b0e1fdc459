package history

import "errors"

var (
	ErrDuplicateEvent = errors.New("status change already recorded")
	ErrInvalidEvent   = errors.New("invalid status change event")
)
