package services

import (
	"log/slog"

	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

// freeCapacityService implements the FreeCapacityService interface
type freeCapacityService struct {
	logger *slog.Logger
}

// NewFreeCapacityService creates a new FreeCapacityService instance
func NewFreeCapacityService(logger *slog.Logger) core.FreeCapacityService {
	return &freeCapacityService{
		logger: logger.With(slog.String("service", "free_capacity")),
	}
}

// FreeCapacity returns the nodes whose free CPU percent, free memory percent
// and at least one mountpoint's free percent all meet the thresholds. The
// disk check is a disjunction across mountpoints: one qualifying disk is
// enough, however full the others are.
func (s *freeCapacityService) FreeCapacity(reports []models.NodeReport, t models.Thresholds) []models.NodeFreeCapacity {
	var qualifying []models.NodeFreeCapacity
	for _, report := range reports {
		memFreePct := percentOf(report.MemoryFreeGB, report.MemoryTotalGB)
		if report.CPUFreePercent < t.CPU || memFreePct < t.Mem {
			continue
		}

		disks := freeDisks(report.Disks, t.Disk)
		if len(disks) == 0 {
			continue
		}

		qualifying = append(qualifying, models.NodeFreeCapacity{
			NodeName:          report.NodeName,
			CPUFreePercent:    report.CPUFreePercent,
			MemoryFreeGB:      report.MemoryFreeGB,
			MemoryFreePercent: memFreePct,
			Disks:             disks,
		})
	}

	s.logger.Debug("filtered nodes by free capacity",
		"candidates", len(reports),
		"qualifying", len(qualifying),
	)
	return qualifying
}

func freeDisks(disks []models.DiskUsage, threshold float64) []models.DiskFreeCapacity {
	var out []models.DiskFreeCapacity
	for _, disk := range disks {
		pct := percentOf(disk.FreeGB, disk.TotalGB)
		if pct >= threshold {
			out = append(out, models.DiskFreeCapacity{
				Mountpoint:  disk.Mountpoint,
				FreeGB:      disk.FreeGB,
				FreePercent: pct,
			})
		}
	}
	return out
}

func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
