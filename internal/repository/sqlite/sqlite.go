package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"personas-repository/internal/domain"
)

// PersonRepository implementa repository.PersonRepository sobre SQLite.
type PersonRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPersonRepository abre la base en dsn, crea el esquema y devuelve un
// repositorio listo para usar.
func NewPersonRepository(dsn string, logger *zap.Logger) (*PersonRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite abrir: %w", err)
	}
	// ":memory:" crea una base distinta por conexión
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS personas (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre           TEXT NOT NULL,
			apellido         TEXT NOT NULL,
			fecha_nacimiento TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear tabla: %w", err)
	}

	logger.Info("sqlite-repository inicializado", zap.String("dsn", dsn))
	return &PersonRepository{db: db, logger: logger}, nil
}

// Close cierra la conexión a la base.
func (r *PersonRepository) Close() error {
	return r.db.Close()
}

// All devuelve todas las personas ordenadas por id.
func (r *PersonRepository) All(ctx context.Context) ([]domain.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, nombre, apellido, fecha_nacimiento FROM personas ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("consulta: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Person, 0)
	for rows.Next() {
		var (
			p     domain.Person
			fecha string
		)
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Apellido, &fecha); err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		if p.FechaNacimiento, err = domain.ParseDate(fecha); err != nil {
			return nil, fmt.Errorf("persona %d: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// execer es lo común entre *sql.DB y *sql.Tx para insertar.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Add inserta person. Si person.ID es 0 la base asigna el id.
func (r *PersonRepository) Add(ctx context.Context, person domain.Person) (domain.Person, error) {
	return insert(ctx, r.db, person)
}

// Seed inserta persons solo si la tabla está vacía, en una única transacción.
// Devuelve la cantidad insertada.
func (r *PersonRepository) Seed(ctx context.Context, persons []domain.Person) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM personas").Scan(&count); err != nil {
		return 0, fmt.Errorf("contar personas: %w", err)
	}
	if count > 0 {
		r.logger.Info("tabla personas ya contiene datos, no se siembra", zap.Int("cantidad", count))
		return 0, nil
	}

	for _, p := range persons {
		if _, err := insert(ctx, tx, p); err != nil {
			return 0, fmt.Errorf("sembrar persona %d: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("personas sembradas", zap.Int("cantidad", len(persons)))
	return len(persons), nil
}

func insert(ctx context.Context, db execer, person domain.Person) (domain.Person, error) {
	if person.Nombre == "" || person.Apellido == "" {
		return domain.Person{}, fmt.Errorf("nombre y apellido son obligatorios: %w", domain.ErrInvalidInput)
	}

	var id any
	if person.ID != 0 {
		id = person.ID
	}
	res, err := db.ExecContext(ctx,
		"INSERT INTO personas (id, nombre, apellido, fecha_nacimiento) VALUES (?, ?, ?, ?)",
		id, person.Nombre, person.Apellido, person.FechaNacimiento.Format(domain.DateLayout),
	)
	if err != nil {
		return domain.Person{}, fmt.Errorf("insertar persona: %w", err)
	}

	last, err := res.LastInsertId()
	if err != nil {
		return domain.Person{}, fmt.Errorf("último id: %w", err)
	}
	person.ID = int(last)
	return person, nil
}
