package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// openTestDB connects to the database named by POLICIA_TEST_DATABASE_URL.
// Tests in this file are skipped when the variable is unset; the schema is
// expected to be migrated already.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("POLICIA_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("POLICIA_TEST_DATABASE_URL not set; skipping database integration tests")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))

	// Each test starts from empty tables.
	_, err = db.ExecContext(ctx, `DELETE FROM casos`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM agentes`)
	require.NoError(t, err)

	return db
}

func mustCreateAgente(t *testing.T, s *PostgresAgenteStore, nome, date, cargo string) *domain.Agente {
	t.Helper()

	parsed, err := domain.ParseDate(date)
	require.NoError(t, err)

	agente, err := domain.NewAgente(nome, parsed, cargo)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), agente))
	require.NotZero(t, agente.ID)
	return agente
}

func mustCreateCaso(t *testing.T, s *PostgresCasoStore, titulo, descricao string, status domain.CasoStatus, agenteID int64) *domain.Caso {
	t.Helper()

	caso, err := domain.NewCaso(titulo, descricao, status, agenteID)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), caso))
	require.NotZero(t, caso.ID)
	return caso
}

func TestAgenteStoreLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)

	created := mustCreateAgente(t, agentes, "Gustavo Rodrigues", "2024-08-01", "Inspetor")

	got, err := agentes.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gustavo Rodrigues", got.Nome)
	assert.Equal(t, "2024-08-01", got.DataDeIncorporacao.Format(domain.DateLayout))

	got.Cargo = "Delegado"
	require.NoError(t, agentes.Update(ctx, got))

	updated, err := agentes.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delegado", updated.Cargo)

	require.NoError(t, agentes.Delete(ctx, created.ID))

	_, err = agentes.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrAgenteNotFound)

	assert.ErrorIs(t, agentes.Update(ctx, updated), store.ErrAgenteNotFound)
	assert.ErrorIs(t, agentes.Delete(ctx, created.ID), store.ErrAgenteNotFound)
}

func TestAgenteStoreListFilterAndSort(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)

	older := mustCreateAgente(t, agentes, "Ana", "2010-01-01", "delegado")
	newer := mustCreateAgente(t, agentes, "Bruno", "2020-01-01", "inspetor")

	t.Run("cargo filter", func(t *testing.T) {
		got, err := agentes.List(ctx, store.AgenteFilter{Cargo: "delegado"}, "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, older.ID, got[0].ID)
	})

	t.Run("ascending by incorporation date", func(t *testing.T) {
		got, err := agentes.List(ctx, store.AgenteFilter{}, store.SortIncorporacaoAsc)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, older.ID, got[0].ID)
		assert.Equal(t, newer.ID, got[1].ID)
	})

	t.Run("descending is the exact reverse", func(t *testing.T) {
		asc, err := agentes.List(ctx, store.AgenteFilter{}, store.SortIncorporacaoAsc)
		require.NoError(t, err)
		desc, err := agentes.List(ctx, store.AgenteFilter{}, store.SortIncorporacaoDesc)
		require.NoError(t, err)

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		got, err := agentes.List(ctx, store.AgenteFilter{Cargo: "escrivao"}, "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCasoStoreLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)
	casos := NewPostgresCasoStore(db, nil)

	agente := mustCreateAgente(t, agentes, "Tatiane Ribeiro", "2022-03-19", "Delegado")
	caso := mustCreateCaso(t, casos, "Vandalismo", "Paredes pichadas.", domain.CasoStatusAberto, agente.ID)

	got, err := casos.GetByID(ctx, caso.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CasoStatusAberto, got.Status)

	got.Status = domain.CasoStatusSolucionado
	require.NoError(t, casos.Update(ctx, got))

	updated, err := casos.GetByID(ctx, caso.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CasoStatusSolucionado, updated.Status)

	require.NoError(t, casos.Delete(ctx, caso.ID))
	_, err = casos.GetByID(ctx, caso.ID)
	assert.ErrorIs(t, err, store.ErrCasoNotFound)
}

func TestCasoStoreForeignKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	casos := NewPostgresCasoStore(db, nil)

	caso := &domain.Caso{
		Titulo:    "Furto",
		Descricao: "Registro de furto.",
		Status:    domain.CasoStatusAberto,
		AgenteID:  999999,
	}

	err := casos.Create(ctx, caso)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestCasoStoreCascadeDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)
	casos := NewPostgresCasoStore(db, nil)

	agente := mustCreateAgente(t, agentes, "Carlos", "2015-06-01", "inspetor")
	caso := mustCreateCaso(t, casos, "Homicídio", "Disparos reportados.", domain.CasoStatusAberto, agente.ID)

	require.NoError(t, agentes.Delete(ctx, agente.ID))

	_, err := casos.GetByID(ctx, caso.ID)
	assert.ErrorIs(t, err, store.ErrCasoNotFound)
}

func TestCasoStoreListFilters(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)
	casos := NewPostgresCasoStore(db, nil)

	a1 := mustCreateAgente(t, agentes, "Ana", "2010-01-01", "delegado")
	a2 := mustCreateAgente(t, agentes, "Bruno", "2020-01-01", "inspetor")

	aberto := mustCreateCaso(t, casos, "Caso A", "descricao", domain.CasoStatusAberto, a1.ID)
	mustCreateCaso(t, casos, "Caso B", "descricao", domain.CasoStatusSolucionado, a2.ID)

	t.Run("by agente", func(t *testing.T) {
		got, err := casos.List(ctx, store.CasoFilter{AgenteID: a1.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, aberto.ID, got[0].ID)
	})

	t.Run("by status", func(t *testing.T) {
		got, err := casos.List(ctx, store.CasoFilter{Status: domain.CasoStatusAberto})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, aberto.ID, got[0].ID)
	})

	t.Run("conjunction of both", func(t *testing.T) {
		got, err := casos.List(ctx, store.CasoFilter{AgenteID: a2.ID, Status: domain.CasoStatusAberto})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCasoStoreSearch(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	agentes := NewPostgresAgenteStore(db, nil)
	casos := NewPostgresCasoStore(db, nil)

	agente := mustCreateAgente(t, agentes, "Ana", "2010-01-01", "delegado")
	vandalismo := mustCreateCaso(t, casos, "Vandalismo", "Paredes pichadas no centro.", domain.CasoStatusAberto, agente.ID)
	furto := mustCreateCaso(t, casos, "Furto", "Veículo levado durante a madrugada.", domain.CasoStatusAberto, agente.ID)

	t.Run("matches titulo case-insensitively", func(t *testing.T) {
		got, err := casos.Search(ctx, "VANDAL")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, vandalismo.ID, got[0].ID)
	})

	t.Run("matches descricao", func(t *testing.T) {
		got, err := casos.Search(ctx, "madrugada")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, furto.ID, got[0].ID)
	})

	t.Run("metacharacters match literally", func(t *testing.T) {
		got, err := casos.Search(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		got, err := casos.Search(ctx, "sequestro")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
