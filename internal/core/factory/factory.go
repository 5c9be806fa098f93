package factory

import (
	"log/slog"

	"github.com/mrgmcs/prometheus-node-report/internal/config"
	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/services"
)

func NewServices(querier services.Querier, cfg *config.Config, logger *slog.Logger) *core.Services {
	metrics := services.NewMetricsService(querier, cfg.Queries, logger)
	return &core.Services{
		Metrics: metrics,
		Report:  services.NewReportService(metrics, logger),
		Free:    services.NewFreeCapacityService(logger),
	}
}
