//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_get_test
package quote_get

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
	Quote(destination string, rawWeight string) pricing.Quote
}
