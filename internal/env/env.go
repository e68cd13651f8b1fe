package env

import (
	"os"
	"strconv"
)

// Fuentes de datos admitidas en DATA_SOURCE.
const (
	SourceHTTP   = "http"
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config contiene los valores del proceso que se fijan por variables de entorno.
// La URI del servicio de personas no vive aquí sino en internal/config.
type Config struct {
	ServerAddr  string  // SERVER_ADDR – dirección del servidor HTTP (por defecto ":8080")
	ConfigFile  string  // CONFIG_FILE – archivo YAML con las secciones de configuración (por defecto "appsettings.yaml")
	DataSource  string  // DATA_SOURCE – "http", "csv" o "sqlite" (por defecto "http")
	CSVFilePath string  // CSV_FILE_PATH – ruta del CSV de personas (por defecto "personas.csv")
	SQLiteDSN   string  // SQLITE_DSN – base SQLite de personas (por defecto "personas.db")
	RateLimit   float64 // RATE_LIMIT – solicitudes por segundo permitidas (por defecto 100)
}

// MustLoad lee la configuración desde el entorno.
func MustLoad() Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) Config {
	return Config{
		ServerAddr:  getOr(getenv, "SERVER_ADDR", ":8080"),
		ConfigFile:  getOr(getenv, "CONFIG_FILE", "appsettings.yaml"),
		DataSource:  getOr(getenv, "DATA_SOURCE", SourceHTTP),
		CSVFilePath: getOr(getenv, "CSV_FILE_PATH", "personas.csv"),
		SQLiteDSN:   getOr(getenv, "SQLITE_DSN", "personas.db"),
		RateLimit:   getFloatOr(getenv, "RATE_LIMIT", 100),
	}
}

func getOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloatOr(getenv func(string) string, key string, fallback float64) float64 {
	if v := getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
