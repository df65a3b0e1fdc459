package logout_post

import (
	"net/http"

	"envios/internal/handlers/rest/response"
	"envios/internal/pkg/middlewares/authentication"
	"envios/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "logout_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP reads the token itself: an expired session can still be closed.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), authentication.Token(r)); err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
