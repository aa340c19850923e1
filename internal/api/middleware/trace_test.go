package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/logger"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	var gotTraceID string
	var gotLoggerFromCtx bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		gotLoggerFromCtx = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Trace(next).ServeHTTP(rec, httptest.NewRequest("GET", "/agentes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, gotTraceID, 32)
	assert.True(t, gotLoggerFromCtx)
}

func TestTraceAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[shared.GetTraceID(r.Context())] = true
	})
	handler := Trace(next)

	for i := 0; i < 10; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/casos", nil))
	}

	assert.Len(t, ids, 10)
}
