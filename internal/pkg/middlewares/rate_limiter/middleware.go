package rate_limiter

import (
	"net/http"
	"strconv"

	"envios/internal/pkg/middlewares/metrics"
	"envios/pkg/logger"
)

const tooManyRequestsBody = `{"message":"rate limit exceeded, try again later"}`

// Middleware sheds load before it reaches the upstream envios API.
// qps is only advertised in X-RateLimit-Limit; the limiter enforces it.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.Route(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(tooManyRequestsBody)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("write rate limit response")
			}
		})
	}
}
