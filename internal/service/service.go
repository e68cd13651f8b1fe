package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"personas-repository/internal/domain"
	"personas-repository/internal/repository"
)

// PersonService encapsula la consulta de personas sobre el repositorio configurado.
type PersonService struct {
	repo   repository.PersonRepository
	logger *zap.Logger
}

// NewPersonService devuelve un PersonService listo para usar.
func NewPersonService(repo repository.PersonRepository, logger *zap.Logger) *PersonService {
	return &PersonService{repo: repo, logger: logger}
}

// All devuelve todas las personas del repositorio.
func (s *PersonService) All(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.repo.All(ctx)
	if err != nil {
		var se *domain.ServiceError
		if errors.As(err, &se) {
			s.logger.Warn("servicio personas no disponible", zap.NamedError("causa", se.Cause))
		} else {
			s.logger.Error("consultar personas", zap.Error(err))
		}
		return nil, err
	}
	return persons, nil
}
