package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
)

func TestRecoverer(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes a JSON 500 envelope", func(t *testing.T) {
		t.Parallel()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		Recoverer(next).ServeHTTP(rec, httptest.NewRequest("GET", "/agentes", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.Equal(t, "Erro interno do servidor.", resp.Message)

		// The panic value never reaches the client.
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("normal requests pass through untouched", func(t *testing.T) {
		t.Parallel()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		Recoverer(next).ServeHTTP(rec, httptest.NewRequest("DELETE", "/agentes/1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("http.ErrAbortHandler is re-panicked", func(t *testing.T) {
		t.Parallel()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			Recoverer(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		})
	})
}
