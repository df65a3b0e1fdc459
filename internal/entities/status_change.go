package entities

import (
	"time"

	"github.com/google/uuid"
)

type StatusChange struct {
	EventID    uuid.UUID
	ShipmentID string
	From       Status
	To         Status
	ChangedBy  string
	OccurredAt time.Time
}

type StatusChangeFilter struct {
	ShipmentID string
	Since      *time.Time
	Limit      uint64
}
