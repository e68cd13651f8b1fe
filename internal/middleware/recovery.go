package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"personas-repository/internal/handler"
)

// Recovery captura panics y responde 500 con el cuerpo de error uniforme.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic capturado",
						zap.String("request_id", chimw.GetReqID(r.Context())),
						zap.Any("error", rec),
						zap.ByteString("stack", debug.Stack()),
					)
					handler.WriteError(w, http.StatusInternalServerError, handler.MsgInternalError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
