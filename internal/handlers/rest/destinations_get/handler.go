package destinations_get

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
		logger.NewField("handler", "destinations_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	rates := h.service.Destinations()

	res := make([]dto.Destination, 0, len(rates))
	for _, rate := range rates {
		res = append(res, dto.Destination{
			Destino:           rate.Destination.String(),
			PrecioPorTonelada: rate.PerTon.String(),
		})
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
