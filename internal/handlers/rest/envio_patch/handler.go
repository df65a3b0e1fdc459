package envio_patch

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
		logger.NewField("handler", "envio_patch"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var patchDTO dto.EditEnvioJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&patchDTO); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "malformed JSON body")
		return
	}

	session := authentication.SessionFromContext(r.Context())
	form := entities.ShipmentEditForm{
		WeightTons:  patchDTO.Toneladas,
		Description: patchDTO.Descripcion,
	}

	shipment, err := h.service.Edit(r.Context(), session, mux.Vars(r)["id"], form)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.Envio(*shipment))
}
