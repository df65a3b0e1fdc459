package envio_delete

import (
	"net/http"

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
		logger.NewField("handler", "envio_delete"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session := authentication.SessionFromContext(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), session, id); err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("shipment", id),
		logger.NewField("username", session.Username),
	).Info("shipment deleted")

	w.WriteHeader(http.StatusNoContent)
}
