// Package remote implementa repository.PersonRepository contra el servicio HTTP de personas.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"personas-repository/internal/config"
	"personas-repository/internal/domain"
)

const (
	SectionName  = "repository_apis"
	EndpointKey  = "url_base_personas"
	ResourcePath = "personas"
)

// maxResponseBody limita la lectura del cuerpo de respuesta a 10 MiB.
const maxResponseBody = 10 << 20

var (
	// ErrInvalidURI indica que la URI base configurada no es absoluta.
	ErrInvalidURI = errors.New("uri de solicitud no válida")
	// ErrNoClient indica que no se entregó un cliente HTTP.
	ErrNoClient = errors.New("cliente http no informado")
	// ErrNilResponse indica que el Getter no devolvió respuesta ni error.
	ErrNilResponse = errors.New("respuesta nula")
)

// PersonRepository consulta la lista de personas en <base>/personas.
type PersonRepository struct {
	baseURI string
	getter  Getter
	logger  *zap.Logger
}

// NewPersonRepository valida cfg y guarda la URI base junto con getter.
// Un valor vacío se acepta aquí; falla recién al consultar.
func NewPersonRepository(cfg config.Configuration, getter Getter, logger *zap.Logger) (*PersonRepository, error) {
	if cfg == nil {
		return nil, domain.ErrConfigurationMissing
	}
	base, ok := cfg.Lookup(SectionName, EndpointKey)
	if !ok {
		return nil, domain.ErrEndpointMissing
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonRepository{baseURI: base, getter: getter, logger: logger}, nil
}

// BaseURI devuelve la URI base configurada.
func (r *PersonRepository) BaseURI() string {
	return r.baseURI
}

// All obtiene todas las personas del servicio. Cualquier fallo se devuelve
// como *domain.ServiceError con la causa original.
func (r *PersonRepository) All(ctx context.Context) ([]domain.Person, error) {
	persons, err := r.fetch(ctx)
	if err != nil {
		r.logger.Debug("fallo al consultar servicio personas",
			zap.String("uri_base", r.baseURI),
			zap.Error(err),
		)
		return nil, domain.NewServiceError(err)
	}
	return persons, nil
}

func (r *PersonRepository) fetch(ctx context.Context) ([]domain.Person, error) {
	uri, err := resourceURI(r.baseURI)
	if err != nil {
		return nil, err
	}
	if r.getter == nil {
		return nil, ErrNoClient
	}

	r.logger.Debug("consultando servicio personas", zap.String("uri", uri))
	resp, err := r.getter.Get(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}
	if resp == nil || resp.Body == nil {
		return nil, fmt.Errorf("get %s: %w", uri, ErrNilResponse)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil, &domain.StatusError{Code: resp.StatusCode}
	}

	var listado domain.ListadoPersonas
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&listado); err != nil {
		return nil, fmt.Errorf("respuesta de %s: %w", uri, err)
	}

	persons, err := listado.ToPersons()
	if err != nil {
		return nil, fmt.Errorf("respuesta de %s: %w", uri, err)
	}
	if listado.Cantidad != len(persons) {
		r.logger.Warn("cantidad no coincide con las personas recibidas",
			zap.Int("cantidad", listado.Cantidad),
			zap.Int("personas", len(persons)),
		)
	}

	r.logger.Debug("personas obtenidas", zap.Int("cantidad", len(persons)))
	return persons, nil
}

// resourceURI une base con ResourcePath. base debe ser una URI http(s) absoluta.
func resourceURI(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidURI, base, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w %q", ErrInvalidURI, base)
	}
	return u.JoinPath(ResourcePath).String(), nil
}
