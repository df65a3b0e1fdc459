package progress_get

import (
	"net/http"

	"envios/internal/generated/dto"
	"envios/internal/handlers/rest/converters"
	"envios/internal/handlers/rest/response"
	"envios/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "progress_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.Progress(r.URL.Query().Get("estado"))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.Progress{
		Estado:   progress.Status.String(),
		Editable: progress.Editable,
		Pasos:    converters.ProgressSteps(progress.Steps),
	})
}
