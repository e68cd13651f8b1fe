package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"personas-repository/internal/config"
	"personas-repository/internal/env"
	"personas-repository/internal/handler"
	"personas-repository/internal/repository"
	csvrepo "personas-repository/internal/repository/csv"
	"personas-repository/internal/repository/remote"
	sqliterepo "personas-repository/internal/repository/sqlite"
	"personas-repository/internal/routes"
	"personas-repository/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := env.MustLoad()
	logger.Info("configuración cargada",
		zap.String("data_source", cfg.DataSource),
		zap.String("config_file", cfg.ConfigFile),
		zap.String("server_addr", cfg.ServerAddr),
		zap.Float64("rate_limit", cfg.RateLimit),
	)

	repo, cleanup := mustInitRepo(cfg, logger)
	if cleanup != nil {
		defer cleanup()
	}

	svc := service.NewPersonService(repo, logger)
	h := handler.NewPersonHandler(svc, logger)

	r := chi.NewRouter()
	routes.Setup(r, h, logger, cfg.RateLimit)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("iniciando servidor", zap.String("direccion", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("apagando servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("apagado forzado", zap.Error(err))
	}
	logger.Info("servidor detenido")
}

// mustInitRepo crea el PersonRepository que corresponde a DATA_SOURCE.
// La función cleanup devuelta, si no es nil, libera los recursos del repositorio.
func mustInitRepo(cfg env.Config, logger *zap.Logger) (repository.PersonRepository, func()) {
	switch cfg.DataSource {
	case env.SourceCSV:
		repo, err := csvrepo.NewPersonRepository(cfg.CSVFilePath, logger)
		if err != nil {
			logger.Fatal("no se pudo cargar el csv-repository", zap.Error(err))
		}
		return repo, nil

	case env.SourceSQLite:
		repo, err := sqliterepo.NewPersonRepository(cfg.SQLiteDSN, logger)
		if err != nil {
			logger.Fatal("no se pudo inicializar el sqlite-repository", zap.Error(err))
		}
		mustSeedFromCSV(repo, cfg.CSVFilePath, logger)
		return repo, func() { _ = repo.Close() }

	default:
		settings := mustLoadSettings(cfg.ConfigFile, logger)
		repo, err := remote.NewPersonRepository(settings, remote.NewClientGetter(&http.Client{}), logger)
		if err != nil {
			logger.Fatal("no se pudo inicializar el repositorio remoto", zap.Error(err))
		}
		logger.Info("repositorio remoto listo", zap.String("uri_base", repo.BaseURI()))
		return repo, nil
	}
}

// mustLoadSettings combina el archivo YAML con las variables SECCION__CLAVE del entorno.
func mustLoadSettings(path string, logger *zap.Logger) config.Settings {
	fromFile, err := config.LoadFile(path)
	if err != nil {
		logger.Fatal("no se pudo leer la configuración", zap.String("archivo", path), zap.Error(err))
	}
	return config.Merge(fromFile, config.FromEnviron(os.Environ()))
}

// mustSeedFromCSV siembra la base SQLite con el CSV de personas si la tabla está vacía.
// Sin archivo CSV no hay nada que sembrar.
func mustSeedFromCSV(repo *sqliterepo.PersonRepository, csvPath string, logger *zap.Logger) {
	if _, err := os.Stat(csvPath); errors.Is(err, os.ErrNotExist) {
		logger.Info("sin csv para sembrar", zap.String("archivo", csvPath))
		return
	}
	src, err := csvrepo.NewPersonRepository(csvPath, logger)
	if err != nil {
		logger.Fatal("no se pudo cargar el csv para sembrar", zap.Error(err))
	}
	ctx := context.Background()
	persons, err := src.All(ctx)
	if err != nil {
		logger.Fatal("leer personas del csv", zap.Error(err))
	}
	if _, err := repo.Seed(ctx, persons); err != nil {
		logger.Fatal("no se pudo sembrar la base sqlite", zap.Error(err))
	}
}
