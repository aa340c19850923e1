package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/docs"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api"
	apiMiddleware "github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/middleware"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	agenteHandler := api.NewAgenteHandler(app.agenteStore, app.logger)
	casoHandler := api.NewCasoHandler(app.casoStore, app.agenteStore, app.logger)

	r.Route("/agentes", func(r chi.Router) {
		r.Get("/", agenteHandler.List)
		r.Post("/", agenteHandler.Create)
		r.Get("/{id}", agenteHandler.GetByID)
		r.Put("/{id}", agenteHandler.Put)
		r.Patch("/{id}", agenteHandler.Patch)
		r.Delete("/{id}", agenteHandler.Delete)
	})

	r.Route("/casos", func(r chi.Router) {
		r.Get("/", casoHandler.List)
		r.Post("/", casoHandler.Create)
		// /casos/search must be registered before /casos/{id}
		r.Get("/search", casoHandler.Search)
		r.Get("/{id}", casoHandler.GetByID)
		r.Get("/{id}/agente", casoHandler.GetAgente)
		r.Put("/{id}", casoHandler.Put)
		r.Patch("/{id}", casoHandler.Patch)
		r.Delete("/{id}", casoHandler.Delete)
	})

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Unmatched routes and wrong methods still answer with the JSON
	// envelope rather than the chi plain-text defaults.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, api.MsgMethodNotAllowed)
	})

	return r
}
