package core

import (
	"context"

	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

type MetricsService interface {
	CPUIdle(ctx context.Context) (models.InstanceMetrics, error)

	CPUCores(ctx context.Context) (models.InstanceMetrics, error)

	MemoryTotal(ctx context.Context) (models.InstanceMetrics, error)

	MemoryAvailable(ctx context.Context) (models.InstanceMetrics, error)

	DiskMetrics(ctx context.Context) (total, free models.DiskMetrics, err error)

	InstanceNames(ctx context.Context) (map[string]string, error)
}

type ReportService interface {
	BuildReports(ctx context.Context) ([]models.NodeReport, error)
}

type FreeCapacityService interface {
	FreeCapacity(reports []models.NodeReport, t models.Thresholds) []models.NodeFreeCapacity
}

type Services struct {
	Metrics MetricsService
	Report  ReportService
	Free    FreeCapacityService
}
