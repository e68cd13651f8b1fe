package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging registra cada solicitud con método, ruta, estado, bytes, duración y request id.
// Las respuestas 5xx (por ejemplo 503 cuando el servicio personas no responde) y 429
// se registran como advertencia.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if ce := logger.Check(levelFor(status), "solicitud"); ce != nil {
				ce.Write(
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("metodo", r.Method),
					zap.String("ruta", r.URL.Path),
					zap.Int("estado", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duracion", time.Since(start)),
				)
			}
		})
	}
}

func levelFor(status int) zapcore.Level {
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}
