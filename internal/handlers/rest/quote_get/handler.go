package quote_get

import (
	"net/http"

	"envios/internal/generated/dto"
	"envios/internal/handlers/rest/response"
	"envios/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "quote_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP is the live price preview. Any input yields a quote; unparsable
// weights and unknown destinations price at zero.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	quote := h.service.Quote(query.Get("destino"), query.Get("toneladas"))

	response.JSON(w, h.log, http.StatusOK, dto.Quote{
		Destino:         quote.Destination.String(),
		Toneladas:       quote.WeightTons.String(),
		Precio:          quote.Price.String(),
		DestinoConocido: !quote.UnknownDestination,
	})
}
