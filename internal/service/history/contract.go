//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"

	"envios/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, change entities.StatusChange) error
	ExistsByEventID(ctx context.Context, eventID uuid.UUID) (bool, error)
	List(ctx context.Context, filter entities.StatusChangeFilter) ([]entities.StatusChange, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
