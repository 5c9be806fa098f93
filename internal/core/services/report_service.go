package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

const bytesPerGB = 1 << 30

// reportService implements the ReportService interface
type reportService struct {
	metrics core.MetricsService
	logger  *slog.Logger
}

// NewReportService creates a new ReportService instance
func NewReportService(metrics core.MetricsService, logger *slog.Logger) core.ReportService {
	return &reportService{
		metrics: metrics,
		logger:  logger.With(slog.String("service", "report")),
	}
}

// BuildReports fetches all metric families, joins them on the union of
// instance keys and returns one NodeReport per instance, ordered by
// instance. The fetches run concurrently; the first failure cancels the
// rest and aborts the run.
func (s *reportService) BuildReports(ctx context.Context) ([]models.NodeReport, error) {
	var (
		cpuIdle, cpuCores   models.InstanceMetrics
		memTotal, memAvail  models.InstanceMetrics
		diskTotal, diskFree models.DiskMetrics
		names               map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cpuIdle, err = s.metrics.CPUIdle(gctx)
		return err
	})
	g.Go(func() (err error) {
		cpuCores, err = s.metrics.CPUCores(gctx)
		return err
	})
	g.Go(func() (err error) {
		memTotal, err = s.metrics.MemoryTotal(gctx)
		return err
	})
	g.Go(func() (err error) {
		memAvail, err = s.metrics.MemoryAvailable(gctx)
		return err
	})
	g.Go(func() (err error) {
		diskTotal, diskFree, err = s.metrics.DiskMetrics(gctx)
		return err
	})
	g.Go(func() (err error) {
		names, err = s.metrics.InstanceNames(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}

	union := make(map[string]struct{})
	for instance := range cpuIdle {
		union[instance] = struct{}{}
	}
	for instance := range cpuCores {
		union[instance] = struct{}{}
	}
	for instance := range memTotal {
		union[instance] = struct{}{}
	}
	for instance := range memAvail {
		union[instance] = struct{}{}
	}
	for instance := range diskTotal {
		union[instance] = struct{}{}
	}
	for instance := range diskFree {
		union[instance] = struct{}{}
	}

	instances := make([]string, 0, len(union))
	for instance := range union {
		instances = append(instances, instance)
	}
	sort.Strings(instances)

	reports := make([]models.NodeReport, 0, len(instances))
	for _, instance := range instances {
		name, ok := names[instance]
		if !ok {
			name = instance
		}

		var cores int
		if sample, ok := cpuCores[instance]; ok {
			cores = int(sample.Value)
		}

		var idle float64
		if sample, ok := cpuIdle[instance]; ok {
			idle = sample.Value
		}
		// A host idling at exactly 0% and a host with no CPU data both
		// report 0% used.
		var used float64
		if idle != 0 {
			used = 100 - idle
		}

		var memT, memA float64
		if sample, ok := memTotal[instance]; ok {
			memT = sample.Value
		}
		if sample, ok := memAvail[instance]; ok {
			memA = sample.Value
		}
		var memUsed float64
		if memT != 0 && memA != 0 {
			memUsed = memT - memA
		}

		reports = append(reports, models.NodeReport{
			NodeName:       name,
			IP:             extractIP(instance),
			CPUCores:       cores,
			CPUUsedPercent: used,
			CPUFreePercent: idle,
			MemoryTotalGB:  bytesToGB(memT),
			MemoryUsedGB:   bytesToGB(memUsed),
			MemoryFreeGB:   bytesToGB(memA),
			Disks:          buildDisks(diskTotal[instance], diskFree[instance]),
		})
	}

	s.logger.Info("aggregated node reports", "nodes", len(reports))
	return reports, nil
}

// buildDisks joins the total and free mappings for one instance. Mountpoints
// are driven by the total mapping; a mountpoint without a free entry counts
// as fully used. Sorted for deterministic output.
func buildDisks(total, free map[string]float64) []models.DiskUsage {
	if len(total) == 0 {
		return nil
	}

	mounts := make([]string, 0, len(total))
	for mount := range total {
		mounts = append(mounts, mount)
	}
	sort.Strings(mounts)

	disks := make([]models.DiskUsage, 0, len(mounts))
	for _, mount := range mounts {
		totalBytes := total[mount]
		freeBytes := free[mount]
		disks = append(disks, models.DiskUsage{
			Mountpoint: mount,
			TotalGB:    bytesToGB(totalBytes),
			UsedGB:     bytesToGB(totalBytes - freeBytes),
			FreeGB:     bytesToGB(freeBytes),
		})
	}
	return disks
}

func bytesToGB(b float64) float64 {
	return b / bytesPerGB
}

// extractIP returns the part of an "IP:port" instance before the colon.
func extractIP(instance string) string {
	if i := strings.Index(instance, ":"); i >= 0 {
		return instance[:i]
	}
	return instance
}
