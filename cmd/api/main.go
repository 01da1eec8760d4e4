package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"ruff-service/internal/adapters/storage/postgres"
	"ruff-service/internal/platform/config"
	"ruff-service/internal/platform/logger"
	"ruff-service/internal/router"
)

// @title ruff-service API
// @version 1.0
// @description Servicio de seguimiento de mascotas por hogar.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Sin DATABASE_URL corre con el store in-memory (modo dev).
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error("database connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		if err := postgres.Migrate(db); err != nil {
			log.Error("migrations failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage", nil)
	}

	r := router.New(router.Options{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
