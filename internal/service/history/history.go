package history

import (
	"context"
	"fmt"

	"envios/internal/entities"
)

type History struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *History {
	return &History{
		repository: repository,
		txManager:  txManager,
	}
}

// Record stores a status change once. Redelivered events are reported with
// ErrDuplicateEvent and leave the store untouched.
func (s *History) Record(ctx context.Context, change entities.StatusChange) error {
	if err := validateChange(change); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repository.ExistsByEventID(ctx, change.EventID)
		if err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateEvent, change.EventID)
		}

		return s.repository.Create(ctx, change)
	})
	if err != nil {
		return fmt.Errorf("record status change: %w", err)
	}

	return nil
}

func (s *History) ListByShipment(ctx context.Context, filter entities.StatusChangeFilter) ([]entities.StatusChange, error) {
	filter, err := normaliseFilter(filter)
	if err != nil {
		return nil, err
	}

	changes, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list status changes: %w", err)
	}

	return changes, nil
}
