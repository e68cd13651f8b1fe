package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"personas-repository/internal/domain"
)

// mockService implementa PersonService para las pruebas del handler.
type mockService struct {
	persons []domain.Person
	err     error
}

func (m *mockService) All(_ context.Context) ([]domain.Person, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.persons, nil
}

func newTestRouter(svc PersonService) http.Handler {
	logger, _ := zap.NewDevelopment()
	h := NewPersonHandler(svc, logger)
	r := chi.NewRouter()
	r.Get("/personas", h.All)
	return r
}

func doGet(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAll_OK(t *testing.T) {
	router := newTestRouter(&mockService{persons: []domain.Person{
		{ID: 10, Nombre: "Juan", Apellido: "Perez", FechaNacimiento: time.Date(1980, 1, 2, 0, 0, 0, 0, time.UTC)},
	}})

	rec := doGet(t, router, "/personas")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"cantidad":1,"personas":[{"id":10,"nombre":"Juan","apellido":"Perez","fecha_nacimiento":"1980-01-02"}]}`,
		rec.Body.String())
}

func TestAll_ListaVacia(t *testing.T) {
	router := newTestRouter(&mockService{})

	rec := doGet(t, router, "/personas")
	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.ListadoPersonas
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Cantidad)
	assert.NotNil(t, body.Personas)
	assert.Empty(t, body.Personas)
}

func TestAll_Errores(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "servicio no disponible",
			err:        domain.NewServiceError(errors.New("dial tcp: refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Servicio personas no disponible",
		},
		{
			name:       "error inesperado",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, newTestRouter(&mockService{err: tt.err}), "/personas")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)
			assert.NotContains(t, rec.Body.String(), "dial tcp")
		})
	}
}
