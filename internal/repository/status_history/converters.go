package status_history

import (
	"envios/internal/entities"
)

func ToDomain(c *StatusChangeDB) *entities.StatusChange {
	if c == nil {
		return nil
	}

	return &entities.StatusChange{
		EventID:    c.EventID,
		ShipmentID: c.ShipmentID,
		From:       entities.Status(c.FromStatus),
		To:         entities.Status(c.ToStatus),
		ChangedBy:  c.ChangedBy,
		OccurredAt: c.OccurredAt,
	}
}

func FromDomain(c *entities.StatusChange) *StatusChangeDB {
	if c == nil {
		return nil
	}

	return &StatusChangeDB{
		EventID:    c.EventID,
		ShipmentID: c.ShipmentID,
		FromStatus: c.From.String(),
		ToStatus:   c.To.String(),
		ChangedBy:  c.ChangedBy,
		OccurredAt: c.OccurredAt,
	}
}

func ToDomainList(changesDB []StatusChangeDB) []entities.StatusChange {
	if len(changesDB) == 0 {
		return []entities.StatusChange{}
	}

	result := make([]entities.StatusChange, len(changesDB))
	for i, changeDB := range changesDB {
		result[i] = *ToDomain(&changeDB)
	}
	return result
}
