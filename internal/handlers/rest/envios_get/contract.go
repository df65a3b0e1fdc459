//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=envios_get_test
package envios_get

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
	List(ctx context.Context, session *entities.Session) ([]entities.Shipment, error)
}
