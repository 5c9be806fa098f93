package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mrgmcs/prometheus-node-report/internal/config"
	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
	"github.com/mrgmcs/prometheus-node-report/internal/transport/http/handlers"
	custommw "github.com/mrgmcs/prometheus-node-report/internal/transport/http/middleware"
)

// NewRouter creates and configures the Chi router
func NewRouter(services *core.Services, cfg *config.Config, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Recovery(logger))
	r.Use(custommw.Logging(logger))
	r.Use(custommw.Timeout(cfg.RequestTimeout))

	thresholds := models.Thresholds{
		CPU:  cfg.CPUFreeThreshold,
		Mem:  cfg.MemFreeThreshold,
		Disk: cfg.DiskFreeThreshold,
	}
	nodeHandlers := handlers.NewNodeHandlers(services.Report, services.Free, thresholds, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/nodes", nodeHandlers.GetNodes)
		r.Get("/nodes/free", nodeHandlers.GetFreeNodes)
		r.Get("/nodes/{nodeName}/report", nodeHandlers.GetNodeReport)
	})

	r.Get("/healthz", handlers.HandleHealth)
	r.Get("/readyz", handlers.HandleReadiness)

	return r
}
