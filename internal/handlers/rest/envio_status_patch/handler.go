package envio_status_patch

import (
	"encoding/json"
	"net/http"

	"envios/internal/entities"
	"envios/internal/generated/dto"
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
		logger.NewField("handler", "envio_status_patch"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var estadoDTO dto.UpdateEstadoJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&estadoDTO); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "malformed JSON body")
		return
	}

	session := authentication.SessionFromContext(r.Context())
	id := mux.Vars(r)["id"]

	shipment, err := h.service.UpdateStatus(r.Context(), session, id, entities.StatusForm{Status: estadoDTO.Estado})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("shipment", id),
		logger.NewField("status", shipment.Status.String()),
		logger.NewField("username", session.Username),
	).Info("shipment status updated")

	response.JSON(w, h.log, http.StatusOK, converters.Envio(*shipment))
}
