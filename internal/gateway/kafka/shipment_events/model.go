package shipment_events

import "time"

type statusChangedEvent struct {
	EventID    string    `json:"event_id"`
	ShipmentID string    `json:"shipment_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
