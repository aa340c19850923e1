// Package main implements the entry point for the Departamento de Polícia
// API server, a REST API for managing agents and the cases assigned to
// them, backed by PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/config"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	seed := flag.Bool("seed", false,
		"apply the seed data and exit")
	flag.Parse()

	if err := run(*migrateCmd, *seed); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, dispatches migration/seed commands when
// requested, and otherwise wires the application and serves HTTP until
// shutdown.
func run(migrateCmd string, seed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if migrateCmd != "" {
		return runMigrations(cfg, appLogger, migrateCmd)
	}
	if seed {
		return runSeeds(cfg, appLogger)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app := newApplication(cfg, appLogger, db)

	return app.Run(context.Background())
}
