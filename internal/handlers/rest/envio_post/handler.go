package envio_post

import (
	"encoding/json"
	"net/http"

	"envios/internal/entities"
	"envios/internal/generated/dto"
	"envios/internal/handlers/rest/converters"
	"envios/internal/handlers/rest/response"
	"envios/internal/pkg/middlewares/authentication"
	"envios/pkg/logger"
	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "envio_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateEnvioJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "malformed JSON body")
		return
	}

	session := authentication.SessionFromContext(r.Context())
	form := entities.ShipmentCreateForm{
		SenderName:      createDTO.Nombre,
		Destination:     createDTO.Destino,
		WeightTons:      createDTO.Toneladas,
		SenderLastName:  pointer.GetString(createDTO.Apellido),
		NationalID:      pointer.GetString(createDTO.Dni),
		OperationNumber: pointer.GetString(createDTO.NumeroOperacion),
		Description:     pointer.GetString(createDTO.Descripcion),
	}

	shipment, err := h.service.Create(r.Context(), session, form)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("shipment", shipment.ID),
		logger.NewField("username", session.Username),
	).Info("shipment registered")

	response.JSON(w, h.log, http.StatusCreated, converters.Envio(*shipment))
}
