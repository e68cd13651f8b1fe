package repository

import (
	"context"

	"personas-repository/internal/domain"
)

// PersonRepository abstrae el acceso a la lista de personas.
// Lo implementan las fuentes remote, csv y sqlite.
type PersonRepository interface {
	All(ctx context.Context) ([]domain.Person, error)
}
