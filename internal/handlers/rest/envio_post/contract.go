//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=envio_post_test
package envio_post

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

type Service interface {
	Create(ctx context.Context, session *entities.Session, form entities.ShipmentCreateForm) (*entities.Shipment, error)
}
