package services

import (
	"context"
	"log/slog"

	"github.com/prometheus/common/model"

	"github.com/mrgmcs/prometheus-node-report/internal/config"
	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

// Querier is the slice of the Prometheus client the fetchers need.
type Querier interface {
	Query(ctx context.Context, query string) (model.Vector, error)
}

// metricsService implements the MetricsService interface
type metricsService struct {
	querier Querier
	queries config.Queries
	logger  *slog.Logger
}

// NewMetricsService creates a new MetricsService backed by a Prometheus querier
func NewMetricsService(querier Querier, queries config.Queries, logger *slog.Logger) core.MetricsService {
	return &metricsService{
		querier: querier,
		queries: queries,
		logger:  logger.With(slog.String("service", "metrics")),
	}
}

func (s *metricsService) CPUIdle(ctx context.Context) (models.InstanceMetrics, error) {
	return s.instanceMetric(ctx, s.queries.CPUIdle)
}

func (s *metricsService) CPUCores(ctx context.Context) (models.InstanceMetrics, error) {
	return s.instanceMetric(ctx, s.queries.CPUCores)
}

func (s *metricsService) MemoryTotal(ctx context.Context) (models.InstanceMetrics, error) {
	return s.instanceMetric(ctx, s.queries.MemoryTotal)
}

func (s *metricsService) MemoryAvailable(ctx context.Context) (models.InstanceMetrics, error) {
	return s.instanceMetric(ctx, s.queries.MemoryAvailable)
}

// instanceMetric keys query results by the instance label. Samples without
// an instance label are dropped.
func (s *metricsService) instanceMetric(ctx context.Context, query string) (models.InstanceMetrics, error) {
	vector, err := s.querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	data := make(models.InstanceMetrics, len(vector))
	for _, sample := range vector {
		instance := string(sample.Metric["instance"])
		if instance == "" {
			continue
		}
		data[instance] = models.MetricSample{
			Value:  float64(sample.Value),
			Labels: labelMap(sample.Metric),
		}
	}

	s.logger.Debug("fetched instance metric", "query", query, "instances", len(data))
	return data, nil
}

// DiskMetrics returns total and free filesystem bytes grouped by instance
// and mountpoint. The two mappings are independent; mountpoints present in
// one need not appear in the other.
func (s *metricsService) DiskMetrics(ctx context.Context) (models.DiskMetrics, models.DiskMetrics, error) {
	total, err := s.diskMetric(ctx, s.queries.DiskTotal)
	if err != nil {
		return nil, nil, err
	}

	free, err := s.diskMetric(ctx, s.queries.DiskFree)
	if err != nil {
		return nil, nil, err
	}

	return total, free, nil
}

func (s *metricsService) diskMetric(ctx context.Context, query string) (models.DiskMetrics, error) {
	vector, err := s.querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	data := make(models.DiskMetrics)
	for _, sample := range vector {
		instance := string(sample.Metric["instance"])
		mount := string(sample.Metric["mountpoint"])
		if instance == "" || mount == "" {
			continue
		}
		if data[instance] == nil {
			data[instance] = make(map[string]float64)
		}
		data[instance][mount] = float64(sample.Value)
	}

	return data, nil
}

// InstanceNames maps each instance to its job label, using the memory-total
// query to enumerate instances. An instance without a job label maps to
// itself.
func (s *metricsService) InstanceNames(ctx context.Context) (map[string]string, error) {
	vector, err := s.querier.Query(ctx, s.queries.MemoryTotal)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(vector))
	for _, sample := range vector {
		instance := string(sample.Metric["instance"])
		if instance == "" {
			continue
		}
		job := string(sample.Metric["job"])
		if job == "" {
			job = instance
		}
		names[instance] = job
	}

	return names, nil
}

func labelMap(metric model.Metric) map[string]string {
	labels := make(map[string]string, len(metric))
	for name, value := range metric {
		labels[string(name)] = string(value)
	}
	return labels
}
