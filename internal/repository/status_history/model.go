package status_history

import (
	"time"

	"github.com/google/uuid"
)

type StatusChangeDB struct {
	EventID    uuid.UUID
	ShipmentID string
	FromStatus string
	ToStatus   string
	ChangedBy  string
	OccurredAt time.Time
}
