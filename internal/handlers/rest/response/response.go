package response

import (
	"encoding/json"
	"net/http"

	"envios/internal/generated/dto"
	"envios/pkg/logger"
)

func JSON(w http.ResponseWriter, log logger.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Message(w http.ResponseWriter, log logger.Logger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

// Error answers with the status the error maps to. Client errors carry the
// error text; failures on our side or upstream are logged and answered with
// a generic message.
func Error(w http.ResponseWriter, log logger.Logger, err error) {
	status := StatusOf(err)

	switch {
	case status == http.StatusBadGateway:
		log.With(
			logger.NewField("error", err),
		).Warn("upstream request failed")
		Message(w, log, status, "envios service unavailable")
	case status >= http.StatusInternalServerError:
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		Message(w, log, status, "internal error")
	default:
		Message(w, log, status, clientMessage(err))
	}
}
