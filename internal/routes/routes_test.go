package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"personas-repository/internal/config"
	"personas-repository/internal/handler"
	"personas-repository/internal/repository/remote"
	"personas-repository/internal/service"
)

func newStack(t *testing.T, status int, body string) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	getter := remote.GetterFunc(func(_ context.Context, _ string) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}, nil
	})
	repo, err := remote.NewPersonRepository(
		config.Settings{remote.SectionName: {remote.EndpointKey: "http://upstream/api-personas/1.0"}},
		getter, logger)
	require.NoError(t, err)

	r := chi.NewRouter()
	Setup(r, handler.NewPersonHandler(service.NewPersonService(repo, logger), logger), logger, 100)
	return r
}

func TestSetup_Personas(t *testing.T) {
	router := newStack(t, http.StatusOK,
		`{"cantidad":1,"personas":[{"id":10,"nombre":"Juan","apellido":"Perez","fecha_nacimiento":"1980-01-02"}]}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"cantidad":1,"personas":[{"id":10,"nombre":"Juan","apellido":"Perez","fecha_nacimiento":"1980-01-02"}]}`,
		rec.Body.String())
}

func TestSetup_ServicioCaido(t *testing.T) {
	router := newStack(t, http.StatusBadGateway, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Servicio personas no disponible"}`, rec.Body.String())
}

func TestSetup_RutaDesconocida(t *testing.T) {
	router := newStack(t, http.StatusOK, `{"cantidad":0,"personas":[]}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/otra", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/personas", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
