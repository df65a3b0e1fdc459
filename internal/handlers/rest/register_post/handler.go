package register_post

import (
	"encoding/json"
	"net/http"

	"envios/internal/entities"
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
		logger.NewField("handler", "register_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var credentialsDTO dto.RegisterJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&credentialsDTO); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "malformed JSON body")
		return
	}

	err := h.service.Register(r.Context(), entities.Credentials{
		Username: credentialsDTO.Username,
		Password: credentialsDTO.Password,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
