package csv

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"personas-repository/internal/domain"
)

// personaCSV es una fila del archivo con cabecera id,nombre,apellido,fecha_nacimiento.
// Todos los campos se leen como texto para poder descartar filas inválidas una a una.
type personaCSV struct {
	ID              string `csv:"id"`
	Nombre          string `csv:"nombre"`
	Apellido        string `csv:"apellido"`
	FechaNacimiento string `csv:"fecha_nacimiento"`
}

// PersonRepository implementa repository.PersonRepository sobre un archivo CSV cargado en memoria.
// persons no cambia después de la carga.
type PersonRepository struct {
	persons []domain.Person
	logger  *zap.Logger
}

// NewPersonRepository carga todas las personas de filePath al construirse.
func NewPersonRepository(filePath string, logger *zap.Logger) (*PersonRepository, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("csv-repository: abrir %s: %w", filePath, err)
	}
	persons, err := decode(data, logger)
	if err != nil {
		return nil, fmt.Errorf("csv-repository: %s: %w", filePath, err)
	}

	logger.Info("personas cargadas desde CSV",
		zap.Int("cantidad", len(persons)),
		zap.String("archivo", filePath),
	)
	return &PersonRepository{persons: persons, logger: logger}, nil
}

// decode interpreta data; las filas inválidas se omiten con una advertencia.
func decode(data []byte, logger *zap.Logger) ([]domain.Person, error) {
	reader := stdcsv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []*personaCSV
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return make([]domain.Person, 0), nil
		}
		return nil, fmt.Errorf("csv leer: %w", err)
	}

	persons := make([]domain.Person, 0, len(rows))
	for i, row := range rows {
		p, err := toPerson(row)
		if err != nil {
			logger.Warn("fila inválida omitida",
				zap.Int("fila", i+2),
				zap.Error(err),
			)
			continue
		}
		persons = append(persons, p)
	}
	return persons, nil
}

// toPerson convierte una fila ya leída en Person.
func toPerson(row *personaCSV) (domain.Person, error) {
	id, err := strconv.Atoi(strings.TrimSpace(row.ID))
	if err != nil {
		return domain.Person{}, fmt.Errorf("id %q: %w", row.ID, domain.ErrInvalidInput)
	}
	nombre := strings.TrimSpace(row.Nombre)
	apellido := strings.TrimSpace(row.Apellido)
	if nombre == "" || apellido == "" {
		return domain.Person{}, fmt.Errorf("persona %d sin nombre o apellido: %w", id, domain.ErrInvalidInput)
	}
	fecha, err := domain.ParseDate(strings.TrimSpace(row.FechaNacimiento))
	if err != nil {
		return domain.Person{}, fmt.Errorf("persona %d: %w", id, err)
	}
	return domain.Person{
		ID:              id,
		Nombre:          nombre,
		Apellido:        apellido,
		FechaNacimiento: fecha,
	}, nil
}

// All devuelve una copia de todas las personas cargadas.
func (r *PersonRepository) All(_ context.Context) ([]domain.Person, error) {
	out := make([]domain.Person, len(r.persons))
	copy(out, r.persons)
	return out, nil
}
