package ping_get

import (
	"net/http"

	"envios/internal/generated/dto"
	"envios/internal/handlers/rest/response"
	"envios/pkg/logger"
	"github.com/AlekSi/pointer"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "ping_get"),
	)

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.ToString("pong"),
	})
}
