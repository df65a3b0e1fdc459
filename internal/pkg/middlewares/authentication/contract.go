//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=authentication_test
package authentication

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

type SessionResolver interface {
	Session(ctx context.Context, token string) (*entities.Session, error)
}
