package remote

import (
	"context"
	"net/http"
)

// Getter es la capacidad HTTP mínima que necesita el repositorio.
type Getter interface {
	Get(ctx context.Context, uri string) (*http.Response, error)
}

// GetterFunc adapta una función a Getter.
type GetterFunc func(ctx context.Context, uri string) (*http.Response, error)

// Get llama a f.
func (f GetterFunc) Get(ctx context.Context, uri string) (*http.Response, error) {
	return f(ctx, uri)
}

// ClientGetter implementa Getter sobre un *http.Client.
type ClientGetter struct {
	client *http.Client
}

// NewClientGetter usa client, o http.DefaultClient si es nil.
func NewClientGetter(client *http.Client) *ClientGetter {
	if client == nil {
		client = http.DefaultClient
	}
	return &ClientGetter{client: client}
}

// Get emite un GET a uri.
func (g *ClientGetter) Get(ctx context.Context, uri string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return g.client.Do(req)
}
