package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/logger"
)

// Recoverer converts panics into a well-formed JSON 500 envelope instead
// of leaking a stack trace to the client. The stack is logged.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					// The connection is gone; let net/http handle it.
					panic(rec)
				}

				log := logger.FromContext(r.Context())
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"Erro interno do servidor.")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
