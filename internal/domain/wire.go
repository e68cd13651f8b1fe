package domain

import (
	"fmt"
	"time"
)

// DateLayout es el formato yyyy-MM-dd de fecha_nacimiento.
const DateLayout = "2006-01-02"

// ListadoPersonas es el cuerpo JSON del recurso personas.
type ListadoPersonas struct {
	Cantidad int           `json:"cantidad"`
	Personas []PersonaJSON `json:"personas"`
}

// PersonaJSON es una persona en formato de transporte.
type PersonaJSON struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	FechaNacimiento string `json:"fecha_nacimiento"`
}

// ToPerson convierte el registro de transporte en una Person.
func (p PersonaJSON) ToPerson() (Person, error) {
	fecha, err := ParseDate(p.FechaNacimiento)
	if err != nil {
		return Person{}, fmt.Errorf("persona %d: %w", p.ID, err)
	}
	return Person{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Apellido:        p.Apellido,
		FechaNacimiento: fecha,
	}, nil
}

// ToPersons convierte todos los registros del listado, conservando el orden.
func (l ListadoPersonas) ToPersons() ([]Person, error) {
	out := make([]Person, 0, len(l.Personas))
	for _, p := range l.Personas {
		person, err := p.ToPerson()
		if err != nil {
			return nil, err
		}
		out = append(out, person)
	}
	return out, nil
}

// NewListado construye el cuerpo de respuesta para persons.
func NewListado(persons []Person) ListadoPersonas {
	out := ListadoPersonas{
		Cantidad: len(persons),
		Personas: make([]PersonaJSON, 0, len(persons)),
	}
	for _, p := range persons {
		out.Personas = append(out.Personas, PersonaJSON{
			ID:              p.ID,
			Nombre:          p.Nombre,
			Apellido:        p.Apellido,
			FechaNacimiento: p.FechaNacimiento.Format(DateLayout),
		})
	}
	return out
}

// ParseDate interpreta s como fecha yyyy-MM-dd en UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha_nacimiento %q: %w: %w", s, ErrInvalidInput, err)
	}
	return t, nil
}
