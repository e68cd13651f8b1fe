package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"personas-repository/internal/domain"
)

// PersonService define lo que el handler espera de la capa de servicio.
type PersonService interface {
	All(ctx context.Context) ([]domain.Person, error)
}

// PersonHandler expone la lista de personas por HTTP.
type PersonHandler struct {
	service PersonService
	logger  *zap.Logger
}

// NewPersonHandler crea un PersonHandler.
func NewPersonHandler(svc PersonService, logger *zap.Logger) *PersonHandler {
	return &PersonHandler{service: svc, logger: logger}
}

// All responde con el listado {cantidad, personas}.
func (h *PersonHandler) All(w http.ResponseWriter, r *http.Request) {
	persons, err := h.service.All(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrServiceUnavailable):
			WriteError(w, http.StatusServiceUnavailable, domain.ErrServiceUnavailable.Error())
		default:
			h.logger.Error("listar personas", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, MsgInternalError)
		}
		return
	}
	WriteJSON(w, http.StatusOK, domain.NewListado(persons))
}

// MsgInternalError es el mensaje para errores no esperados.
const MsgInternalError = "error interno del servidor"

// errorBody es la estructura uniforme de las respuestas de error.
type errorBody struct {
	Error string `json:"error"`
}

// WriteError escribe msg como errorBody con status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{msg})
}

// WriteJSON fija el Content-Type y escribe v como JSON.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
