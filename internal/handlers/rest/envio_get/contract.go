//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=envio_get_test
package envio_get

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
	Get(ctx context.Context, session *entities.Session, id string) (*entities.ShipmentView, error)
}
