package middleware

import (
	"math"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"personas-repository/internal/handler"
)

// RateLimit limita las solicitudes entrantes a requestsPerSecond con un token bucket
// compartido. Un valor <= 0 desactiva el límite.
func RateLimit(requestsPerSecond float64, logger *zap.Logger) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst := int(math.Max(1, math.Ceil(requestsPerSecond)))
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("límite de solicitudes superado",
					zap.String("remoto", r.RemoteAddr),
				)
				handler.WriteError(w, http.StatusTooManyRequests, "demasiadas solicitudes")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
