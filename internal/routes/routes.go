package routes

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"personas-repository/internal/handler"
	"personas-repository/internal/middleware"
)

// Setup registra el middleware global y los endpoints de personas en el router.
func Setup(r chi.Router, h *handler.PersonHandler, logger *zap.Logger, rps float64) {
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.RateLimit(rps, logger))

	r.Get("/personas", h.All)
}
