package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// PostgresAgenteStore implements the store.AgenteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAgenteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAgenteStore creates a new PostgreSQL implementation of the
// AgenteStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAgenteStore(db store.DBTX, logger *slog.Logger) *PostgresAgenteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAgenteStore{
		db:     db,
		logger: logger.With(slog.String("component", "agente_store")),
	}
}

// Ensure PostgresAgenteStore implements store.AgenteStore interface
var _ store.AgenteStore = (*PostgresAgenteStore)(nil)

// The incorporation date column keeps the camel-cased name of the external
// contract, so it must be quoted in every statement.
const agenteColumns = `id, nome, "dataDeIncorporacao", cargo`

// List implements store.AgenteStore.List.
// The filter is applied as an exact-match conjunction; sort must be one of
// the store sort tokens or empty.
func (s *PostgresAgenteStore) List(
	ctx context.Context,
	filter store.AgenteFilter,
	sort string,
) ([]*domain.Agente, error) {
	query := `SELECT ` + agenteColumns + ` FROM agentes`

	var args []any
	if filter.Cargo != "" {
		query += ` WHERE cargo = $1`
		args = append(args, filter.Cargo)
	}

	switch sort {
	case store.SortIncorporacaoAsc:
		query += ` ORDER BY "dataDeIncorporacao" ASC, id ASC`
	case store.SortIncorporacaoDesc:
		query += ` ORDER BY "dataDeIncorporacao" DESC, id DESC`
	case "":
		query += ` ORDER BY id ASC`
	default:
		return nil, fmt.Errorf("unsupported sort token %q", sort)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	agentes := make([]*domain.Agente, 0)
	for rows.Next() {
		var agente domain.Agente
		if err := rows.Scan(&agente.ID, &agente.Nome, &agente.DataDeIncorporacao, &agente.Cargo); err != nil {
			return nil, MapError(err)
		}
		agentes = append(agentes, &agente)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return agentes, nil
}

// GetByID implements store.AgenteStore.GetByID.
// Returns store.ErrAgenteNotFound if the agent does not exist.
func (s *PostgresAgenteStore) GetByID(ctx context.Context, id int64) (*domain.Agente, error) {
	query := `SELECT ` + agenteColumns + ` FROM agentes WHERE id = $1`

	var agente domain.Agente
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&agente.ID, &agente.Nome, &agente.DataDeIncorporacao, &agente.Cargo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAgenteNotFound
		}
		return nil, MapError(err)
	}

	return &agente, nil
}

// Create implements store.AgenteStore.Create.
// The store-assigned ID is written back into the given entity.
func (s *PostgresAgenteStore) Create(ctx context.Context, agente *domain.Agente) error {
	query := `INSERT INTO agentes (nome, "dataDeIncorporacao", cargo)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query, agente.Nome, agente.DataDeIncorporacao, agente.Cargo).
		Scan(&agente.ID)
	if err != nil {
		return store.NewStoreError("agente", "create", "insert failed", MapError(err))
	}

	s.logger.DebugContext(ctx, "agente created", slog.Int64("agente_id", agente.ID))
	return nil
}

// Update implements store.AgenteStore.Update.
// Only the mutable columns are written; the primary key never is.
// Returns store.ErrAgenteNotFound if the agent does not exist.
func (s *PostgresAgenteStore) Update(ctx context.Context, agente *domain.Agente) error {
	query := `UPDATE agentes
		SET nome = $1, "dataDeIncorporacao" = $2, cargo = $3
		WHERE id = $4`

	result, err := s.db.ExecContext(
		ctx,
		query,
		agente.Nome,
		agente.DataDeIncorporacao,
		agente.Cargo,
		agente.ID,
	)
	if err != nil {
		return store.NewStoreError("agente", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrAgenteNotFound)
}

// Delete implements store.AgenteStore.Delete.
// Cases owned by the agent are removed by ON DELETE CASCADE.
// Returns store.ErrAgenteNotFound if the agent does not exist.
func (s *PostgresAgenteStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM agentes WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("agente", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAgenteNotFound); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "agente deleted", slog.Int64("agente_id", id))
	return nil
}
