package services

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

func defaultThresholds() models.Thresholds {
	return models.Thresholds{CPU: 40, Mem: 40, Disk: 40}
}

func TestFreeCapacityService_FreeCapacity(t *testing.T) {
	tests := []struct {
		name       string
		report     models.NodeReport
		thresholds models.Thresholds
		qualifies  bool
		wantDisks  []string
	}{
		{
			name: "qualifies via second mountpoint",
			report: models.NodeReport{
				NodeName:       "web-01",
				CPUFreePercent: 50,
				MemoryTotalGB:  100,
				MemoryFreeGB:   45,
				Disks: []models.DiskUsage{
					{Mountpoint: "/", TotalGB: 100, FreeGB: 10},
					{Mountpoint: "/data", TotalGB: 50, FreeGB: 25},
				},
			},
			thresholds: defaultThresholds(),
			qualifies:  true,
			wantDisks:  []string{"/data"},
		},
		{
			name: "cpu below threshold excludes node",
			report: models.NodeReport{
				NodeName:       "busy-01",
				CPUFreePercent: 30,
				MemoryTotalGB:  100,
				MemoryFreeGB:   90,
				Disks: []models.DiskUsage{
					{Mountpoint: "/", TotalGB: 100, FreeGB: 90},
				},
			},
			thresholds: defaultThresholds(),
			qualifies:  false,
		},
		{
			name: "memory below threshold excludes node",
			report: models.NodeReport{
				NodeName:       "full-mem",
				CPUFreePercent: 80,
				MemoryTotalGB:  100,
				MemoryFreeGB:   20,
				Disks: []models.DiskUsage{
					{Mountpoint: "/", TotalGB: 100, FreeGB: 90},
				},
			},
			thresholds: defaultThresholds(),
			qualifies:  false,
		},
		{
			name: "no qualifying disk excludes node",
			report: models.NodeReport{
				NodeName:       "full-disk",
				CPUFreePercent: 80,
				MemoryTotalGB:  100,
				MemoryFreeGB:   80,
				Disks: []models.DiskUsage{
					{Mountpoint: "/", TotalGB: 100, FreeGB: 5},
				},
			},
			thresholds: defaultThresholds(),
			qualifies:  false,
		},
		{
			name: "zero memory total counts as zero percent free",
			report: models.NodeReport{
				NodeName:       "no-mem-data",
				CPUFreePercent: 80,
				MemoryTotalGB:  0,
				MemoryFreeGB:   0,
				Disks: []models.DiskUsage{
					{Mountpoint: "/", TotalGB: 100, FreeGB: 90},
				},
			},
			thresholds: defaultThresholds(),
			qualifies:  false,
		},
		{
			name: "threshold boundary is inclusive",
			report: models.NodeReport{
				NodeName:       "edge",
				CPUFreePercent: 40,
				MemoryTotalGB:  100,
				MemoryFreeGB:   40,
				Disks: []models.DiskUsage{
					{Mountpoint: "/", TotalGB: 100, FreeGB: 40},
				},
			},
			thresholds: defaultThresholds(),
			qualifies:  true,
			wantDisks:  []string{"/"},
		},
	}

	svc := NewFreeCapacityService(slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FreeCapacity([]models.NodeReport{tt.report}, tt.thresholds)

			if !tt.qualifies {
				assert.Empty(t, got)
				return
			}

			require.Len(t, got, 1)
			assert.Equal(t, tt.report.NodeName, got[0].NodeName)

			var mounts []string
			for _, d := range got[0].Disks {
				mounts = append(mounts, d.Mountpoint)
			}
			assert.Equal(t, tt.wantDisks, mounts)
		})
	}
}

func TestFreeCapacityService_MemoryFreePercent(t *testing.T) {
	svc := NewFreeCapacityService(slog.Default())

	reports := []models.NodeReport{{
		NodeName:       "web-01",
		CPUFreePercent: 50,
		MemoryTotalGB:  100,
		MemoryFreeGB:   45,
		Disks:          []models.DiskUsage{{Mountpoint: "/data", TotalGB: 50, FreeGB: 25}},
	}}

	got := svc.FreeCapacity(reports, defaultThresholds())
	require.Len(t, got, 1)

	assert.InDelta(t, 45.0, got[0].MemoryFreePercent, 1e-9)
	require.Len(t, got[0].Disks, 1)
	assert.InDelta(t, 50.0, got[0].Disks[0].FreePercent, 1e-9)
	assert.Equal(t, 25.0, got[0].Disks[0].FreeGB)
}

func TestFreeCapacityService_EveryReportEvaluated(t *testing.T) {
	// Two instances sharing a node name are both evaluated; the filter
	// works on reports, not on a name-keyed map.
	svc := NewFreeCapacityService(slog.Default())

	shared := models.NodeReport{
		NodeName:       "clone",
		CPUFreePercent: 90,
		MemoryTotalGB:  10,
		MemoryFreeGB:   9,
		Disks:          []models.DiskUsage{{Mountpoint: "/", TotalGB: 10, FreeGB: 9}},
	}

	got := svc.FreeCapacity([]models.NodeReport{shared, shared}, defaultThresholds())
	assert.Len(t, got, 2)
}
