package envio_history_get

import (
	"net/http"

	"envios/internal/handlers/rest/converters"
	"envios/internal/handlers/rest/response"
	"envios/internal/pkg/middlewares/authentication"
	"envios/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "envio_history_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session := authentication.SessionFromContext(r.Context())

	changes, err := h.service.History(r.Context(), session, mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.StatusChanges(changes))
}
