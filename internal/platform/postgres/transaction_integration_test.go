package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

func TestRunInTransactionCommit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txAgentes := NewPostgresAgenteStore(tx, nil)
		parsed, err := domain.ParseDate("2020-01-01")
		if err != nil {
			return err
		}
		agente, err := domain.NewAgente("Ana", parsed, "delegado")
		if err != nil {
			return err
		}
		return txAgentes.Create(ctx, agente)
	})
	require.NoError(t, err)

	got, err := agentes.List(ctx, store.AgenteFilter{}, "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRunInTransactionRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)

	sentinel := errors.New("abort")
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txAgentes := NewPostgresAgenteStore(tx, nil)
		parsed, parseErr := domain.ParseDate("2020-01-01")
		require.NoError(t, parseErr)
		agente, newErr := domain.NewAgente("Ana", parsed, "delegado")
		require.NoError(t, newErr)
		require.NoError(t, txAgentes.Create(ctx, agente))
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// The insert inside the failed transaction is gone.
	got, err := agentes.List(ctx, store.AgenteFilter{}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunInTransactionPanicRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)

	assert.Panics(t, func() {
		_ = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			txAgentes := NewPostgresAgenteStore(tx, nil)
			parsed, _ := domain.ParseDate("2020-01-01")
			agente, _ := domain.NewAgente("Ana", parsed, "delegado")
			_ = txAgentes.Create(ctx, agente)
			panic("boom")
		})
	})

	got, err := agentes.List(ctx, store.AgenteFilter{}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
