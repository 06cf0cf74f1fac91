package serverhttp

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"catalog-recon/internal/config"
	"catalog-recon/internal/middleware"
	recHnd "catalog-recon/internal/reconcile/handler"
	"catalog-recon/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// requestID first so the panic and access logs carry the rid
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	if cfg.MaxUploadMB > 0 {
		r.Use(chimw.RequestSize(int64(cfg.MaxUploadMB) << 20))
	}

	r.Get("/health", handlers.Health)

	// customers + manufacturers + items -> match report
	r.Post("/reconcile", recHnd.Reconcile(cfg, logger))

	return r
}
