package authentication

import (
	"net/http"

	"envios/internal/handlers/rest/response"
	"envios/internal/service/auth"
	"envios/pkg/logger"
)

// Middleware resolves the session behind x-auth-token and stores it in the
// request context. Requests without a live session never reach next.
func Middleware(log handlerLogger, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := Token(r)
			if token == "" {
				response.Error(w, log, auth.ErrUnauthenticated)
				return
			}

			session, err := resolver.Session(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Info("session rejected")
				response.Error(w, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), session)))
		})
	}
}
