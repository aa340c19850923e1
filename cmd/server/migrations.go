package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/config"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/logger"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/postgres"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// slogGooseLogger adapts slog to the goose.Logger interface so migration
// output lands in the structured log stream.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// runMigrations executes the given goose command (up, down, status)
// against the embedded migration files.
func runMigrations(cfg *config.Config, log *slog.Logger, command string) error {
	// A correlation ID ties together all log lines of one migration run.
	migrationLogger := log.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	migrationLogger.Info("starting migration operation")

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db, err := openMigrationDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			migrationLogger.Error("failed to close database connection", "error", closeErr)
		}
	}()

	switch command {
	case "up":
		err = goose.Up(db, "migrations")
	case "down":
		err = goose.Down(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
	if err != nil {
		migrationLogger.Error("migration operation failed", "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("migration operation completed")
	return nil
}

// runSeeds wipes and repopulates both tables with the fixed departamento
// data set. Seeding is idempotent; re-running it replaces the data.
func runSeeds(cfg *config.Config, log *slog.Logger) error {
	seedLogger := log.With(
		"correlation_id", uuid.New().String(),
		"component", "seeds",
	)

	seedLogger.Info("applying seed data")

	db, err := openMigrationDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			seedLogger.Error("failed to close database connection", "error", closeErr)
		}
	}()

	ctx := logger.WithContext(context.Background(), seedLogger)
	if err := applySeedData(ctx, db, seedLogger); err != nil {
		seedLogger.Error("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	seedLogger.Info("seed data applied")
	return nil
}

// applySeedData replaces the contents of both tables with the seed
// agents and their cases. The wipe and the inserts are one unit of work;
// a failure part-way leaves the previous data untouched.
func applySeedData(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM casos`); err != nil {
			return fmt.Errorf("failed to clear casos: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM agentes`); err != nil {
			return fmt.Errorf("failed to clear agentes: %w", err)
		}

		agenteStore := postgres.NewPostgresAgenteStore(tx, log)
		casoStore := postgres.NewPostgresCasoStore(tx, log)

		for _, seed := range []struct {
			nome          string
			incorporacao  string
			cargo         string
			casoTitulo    string
			casoDescricao string
			casoStatus    domain.CasoStatus
		}{
			{
				nome:          "Gustavo Rodrigues",
				incorporacao:  "2024-08-01",
				cargo:         "Inspetor",
				casoTitulo:    "Vandalismo",
				casoDescricao: "Durante a madrugada de 21/11/2024, diversas paredes de um prédio público foram pichadas e vidros foram quebrados.",
				casoStatus:    domain.CasoStatusSolucionado,
			},
			{
				nome:          "Tatiane Ribeiro",
				incorporacao:  "2022-03-19",
				cargo:         "Delegado",
				casoTitulo:    "Homicídio",
				casoDescricao: "Disparos foram reportados às 22:33 do dia 10/07/2021 na região do bairro União, resultando na morte da vítima, um homem de 45 anos.",
				casoStatus:    domain.CasoStatusAberto,
			},
		} {
			date, err := domain.ParseDate(seed.incorporacao)
			if err != nil {
				return err
			}
			agente, err := domain.NewAgente(seed.nome, date, seed.cargo)
			if err != nil {
				return err
			}
			if err := agenteStore.Create(ctx, agente); err != nil {
				return err
			}

			caso, err := domain.NewCaso(seed.casoTitulo, seed.casoDescricao, seed.casoStatus, agente.ID)
			if err != nil {
				return err
			}
			if err := casoStore.Create(ctx, caso); err != nil {
				return err
			}
		}

		return nil
	})
}

// openMigrationDB opens a plain connection for migration commands.
func openMigrationDB(cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database URL is empty: check your configuration")
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	return db, nil
}
