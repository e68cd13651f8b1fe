package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrConfigurationMissing = errors.New("No se informó la configuración")
	ErrEndpointMissing      = errors.New("La sección repository_apis no contiene 'url_base_personas'")
	ErrServiceUnavailable   = errors.New("Servicio personas no disponible")
	ErrInvalidInput         = errors.New("entrada no válida")
)

// Person representa una persona tal como la entrega el servicio de personas.
type Person struct {
	ID              int
	Nombre          string
	Apellido        string
	FechaNacimiento time.Time
}

// ServiceError es el error genérico de acceso al servicio de personas.
// El mensaje siempre es el de ErrServiceUnavailable; Cause conserva el fallo original.
type ServiceError struct {
	Cause error
}

// NewServiceError envuelve cause como ServiceError.
func NewServiceError(cause error) *ServiceError {
	return &ServiceError{Cause: cause}
}

func (e *ServiceError) Error() string {
	return ErrServiceUnavailable.Error()
}

// Unwrap permite que errors.Is encuentre tanto ErrServiceUnavailable como la causa.
func (e *ServiceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrServiceUnavailable}
	}
	return []error{ErrServiceUnavailable, e.Cause}
}

// StatusError describe una respuesta del servicio con estado distinto de 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("estado inesperado %d %s", e.Code, http.StatusText(e.Code))
}
