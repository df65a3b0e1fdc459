//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=envio_delete_test
package envio_delete

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
	Delete(ctx context.Context, session *entities.Session, id string) error
}
