package history

import (
	"fmt"
	"strings"

	"envios/internal/entities"
	"envios/internal/service/lifecycle"
	"github.com/google/uuid"
)

const maxListLimit = 500

func validateChange(change entities.StatusChange) error {
	if change.EventID == uuid.Nil {
		return fmt.Errorf("%w: missing event id", ErrInvalidEvent)
	}
	if strings.TrimSpace(change.ShipmentID) == "" {
		return fmt.Errorf("%w: missing shipment id", ErrInvalidEvent)
	}
	if _, err := lifecycle.ProgressIndex(change.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if change.OccurredAt.IsZero() {
		return fmt.Errorf("%w: missing occurred_at", ErrInvalidEvent)
	}
	return nil
}

func normaliseFilter(filter entities.StatusChangeFilter) (entities.StatusChangeFilter, error) {
	filter.ShipmentID = strings.TrimSpace(filter.ShipmentID)
	if filter.ShipmentID == "" {
		return filter, fmt.Errorf("%w: missing shipment id", ErrInvalidEvent)
	}
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return filter, nil
}
