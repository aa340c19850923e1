package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/config"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/postgres"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	agenteStore store.AgenteStore
	casoStore   store.CasoStore
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.agenteStore = postgres.NewPostgresAgenteStore(db, logger)
	app.casoStore = postgres.NewPostgresCasoStore(db, logger)

	logger.Info("application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
