//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"envios/internal/entities"
	"envios/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	ListShipments(ctx context.Context, token string) ([]entities.Shipment, error)
	GetShipment(ctx context.Context, token, id string) (*entities.Shipment, error)
	CreateShipment(ctx context.Context, token string, shipment entities.ShipmentModify) (*entities.Shipment, error)
	UpdateShipment(ctx context.Context, token string, shipment entities.ShipmentModify) (*entities.Shipment, error)
	UpdateStatus(ctx context.Context, token, id string, status entities.Status) (*entities.Shipment, error)
	DeleteShipment(ctx context.Context, token, id string) error
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, change entities.StatusChange) error
}

type HistoryReader interface {
	ListByShipment(ctx context.Context, filter entities.StatusChangeFilter) ([]entities.StatusChange, error)
}
