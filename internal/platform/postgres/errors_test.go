package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil stays nil",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows maps to not found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "wrapped no rows maps to not found",
			err:      fmt.Errorf("scan: %w", sql.ErrNoRows),
			expected: store.ErrNotFound,
		},
		{
			name:     "foreign key violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "casos_agente_id_fkey"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "check violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "casos_status_check"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not null violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23502", ColumnName: "titulo"},
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.expected)
		})
	}

	t.Run("unrecognized errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		err := errors.New("connection reset by peer")
		assert.Equal(t, err, MapError(err))
	})

	t.Run("pg errors with other codes pass through unchanged", func(t *testing.T) {
		t.Parallel()
		err := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
		assert.Equal(t, error(err), MapError(err))
	})
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("affected rows mean success", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrAgenteNotFound))
	})

	t.Run("zero rows yield the provided not found error", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrCasoNotFound)
		assert.ErrorIs(t, err, store.ErrCasoNotFound)
	})

	t.Run("result errors are wrapped", func(t *testing.T) {
		t.Parallel()
		resultErr := errors.New("driver does not support RowsAffected")
		err := CheckRowsAffected(fakeResult{err: resultErr}, store.ErrCasoNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, resultErr)
	})

	t.Run("nil result is an error", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, CheckRowsAffected(nil, store.ErrCasoNotFound))
	})
}
