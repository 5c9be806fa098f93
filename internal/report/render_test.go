package report

import (
	"testing"

	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

func TestRender_WithDisks(t *testing.T) {
	r := models.NodeReport{
		NodeName:       "web-01",
		IP:             "10.0.0.5",
		CPUCores:       8,
		CPUUsedPercent: 26.5,
		CPUFreePercent: 73.5,
		MemoryTotalGB:  16,
		MemoryUsedGB:   12,
		MemoryFreeGB:   4,
		Disks: []models.DiskUsage{
			{Mountpoint: "/", TotalGB: 100, UsedGB: 60, FreeGB: 40},
		},
	}

	want := "Node: web-01 (IP: 10.0.0.5)\n" +
		" CPU cores: 8\n" +
		" CPU used: 26.50%\n" +
		" CPU free: 73.50%\n" +
		" Memory total: 16.00 GB\n" +
		" Memory used: 12.00 GB\n" +
		" Memory free: 4.00 GB\n" +
		" Disks:\n" +
		"  Mountpoint: /\n" +
		"    Total: 100.00 GB\n" +
		"    Used: 60.00 GB\n" +
		"    Free: 40.00 GB\n" +
		"----------------------------------------"

	if got := Render(r); got != want {
		t.Errorf("unexpected render output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_NoDiskData(t *testing.T) {
	r := models.NodeReport{
		NodeName: "bare-01",
		IP:       "10.0.0.6",
	}

	want := "Node: bare-01 (IP: 10.0.0.6)\n" +
		" CPU cores: 0\n" +
		" CPU used: 0.00%\n" +
		" CPU free: 0.00%\n" +
		" Memory total: 0.00 GB\n" +
		" Memory used: 0.00 GB\n" +
		" Memory free: 0.00 GB\n" +
		" Disks:\n" +
		"  No disk data available\n" +
		"----------------------------------------"

	if got := Render(r); got != want {
		t.Errorf("unexpected render output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := models.NodeReport{
		NodeName:      "web-01",
		IP:            "10.0.0.5",
		MemoryTotalGB: 16,
		Disks: []models.DiskUsage{
			{Mountpoint: "/", TotalGB: 100, UsedGB: 60, FreeGB: 40},
			{Mountpoint: "/data", TotalGB: 50, UsedGB: 25, FreeGB: 25},
		},
	}

	if Render(r) != Render(r) {
		t.Error("expected identical output for identical input")
	}
}
