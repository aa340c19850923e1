package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// PostgresCasoStore implements the store.CasoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCasoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCasoStore creates a new PostgreSQL implementation of the
// CasoStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCasoStore(db store.DBTX, logger *slog.Logger) *PostgresCasoStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCasoStore{
		db:     db,
		logger: logger.With(slog.String("component", "caso_store")),
	}
}

// Ensure PostgresCasoStore implements store.CasoStore interface
var _ store.CasoStore = (*PostgresCasoStore)(nil)

const casoColumns = `id, titulo, descricao, status, agente_id`

// List implements store.CasoStore.List.
// The filter is applied as an exact-match conjunction of the set fields.
func (s *PostgresCasoStore) List(ctx context.Context, filter store.CasoFilter) ([]*domain.Caso, error) {
	query := `SELECT ` + casoColumns + ` FROM casos`

	var (
		conditions []string
		args       []any
	)
	if filter.AgenteID > 0 {
		args = append(args, filter.AgenteID)
		conditions = append(conditions, fmt.Sprintf("agente_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id ASC`

	return s.queryCasos(ctx, query, args...)
}

// GetByID implements store.CasoStore.GetByID.
// Returns store.ErrCasoNotFound if the case does not exist.
func (s *PostgresCasoStore) GetByID(ctx context.Context, id int64) (*domain.Caso, error) {
	query := `SELECT ` + casoColumns + ` FROM casos WHERE id = $1`

	var caso domain.Caso
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&caso.ID, &caso.Titulo, &caso.Descricao, &caso.Status, &caso.AgenteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCasoNotFound
		}
		return nil, MapError(err)
	}

	return &caso, nil
}

// Search implements store.CasoStore.Search.
// The match is a case-insensitive substring (ILIKE) over titulo and
// descricao, combined with OR. Pattern metacharacters in the term are
// escaped so they match literally.
func (s *PostgresCasoStore) Search(ctx context.Context, term string) ([]*domain.Caso, error) {
	pattern := "%" + escapeLikePattern(term) + "%"
	query := `SELECT ` + casoColumns + ` FROM casos
		WHERE titulo ILIKE $1 OR descricao ILIKE $1
		ORDER BY id ASC`

	return s.queryCasos(ctx, query, pattern)
}

// Create implements store.CasoStore.Create.
// The store-assigned ID is written back into the given entity.
// Returns a wrapped store.ErrInvalidEntity if agente_id violates the
// foreign key constraint.
func (s *PostgresCasoStore) Create(ctx context.Context, caso *domain.Caso) error {
	query := `INSERT INTO casos (titulo, descricao, status, agente_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query, caso.Titulo, caso.Descricao, caso.Status, caso.AgenteID).
		Scan(&caso.ID)
	if err != nil {
		return store.NewStoreError("caso", "create", "insert failed", MapError(err))
	}

	s.logger.DebugContext(ctx, "caso created",
		slog.Int64("caso_id", caso.ID),
		slog.Int64("agente_id", caso.AgenteID))
	return nil
}

// Update implements store.CasoStore.Update.
// Only the mutable columns are written; the primary key never is.
// Returns store.ErrCasoNotFound if the case does not exist.
func (s *PostgresCasoStore) Update(ctx context.Context, caso *domain.Caso) error {
	query := `UPDATE casos
		SET titulo = $1, descricao = $2, status = $3, agente_id = $4
		WHERE id = $5`

	result, err := s.db.ExecContext(
		ctx,
		query,
		caso.Titulo,
		caso.Descricao,
		caso.Status,
		caso.AgenteID,
		caso.ID,
	)
	if err != nil {
		return store.NewStoreError("caso", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrCasoNotFound)
}

// Delete implements store.CasoStore.Delete.
// Returns store.ErrCasoNotFound if the case does not exist.
func (s *PostgresCasoStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM casos WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("caso", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCasoNotFound); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "caso deleted", slog.Int64("caso_id", id))
	return nil
}

// queryCasos runs a multi-row caso query and scans the results.
func (s *PostgresCasoStore) queryCasos(ctx context.Context, query string, args ...any) ([]*domain.Caso, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	casos := make([]*domain.Caso, 0)
	for rows.Next() {
		var caso domain.Caso
		if err := rows.Scan(&caso.ID, &caso.Titulo, &caso.Descricao, &caso.Status, &caso.AgenteID); err != nil {
			return nil, MapError(err)
		}
		casos = append(casos, &caso)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return casos, nil
}

// escapeLikePattern escapes the LIKE metacharacters so a search term
// matches literally.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
