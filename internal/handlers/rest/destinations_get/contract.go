//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=destinations_get_test
package destinations_get

import (
	"envios/internal/service/pricing"
	"envios/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Destinations() []pricing.Rate
}
