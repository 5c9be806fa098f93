package report

import (
	"fmt"
	"strings"

	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

// Separator is the fixed trailer line ending every report block.
const Separator = "----------------------------------------"

// Render formats a node report as its fixed multi-line text block. Output is
// deterministic given the report; re-rendering identical data yields
// identical bytes.
func Render(r models.NodeReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Node: %s (IP: %s)\n", r.NodeName, r.IP)
	fmt.Fprintf(&b, " CPU cores: %d\n", r.CPUCores)
	fmt.Fprintf(&b, " CPU used: %.2f%%\n", r.CPUUsedPercent)
	fmt.Fprintf(&b, " CPU free: %.2f%%\n", r.CPUFreePercent)
	fmt.Fprintf(&b, " Memory total: %.2f GB\n", r.MemoryTotalGB)
	fmt.Fprintf(&b, " Memory used: %.2f GB\n", r.MemoryUsedGB)
	fmt.Fprintf(&b, " Memory free: %.2f GB\n", r.MemoryFreeGB)
	b.WriteString(" Disks:\n")

	if len(r.Disks) == 0 {
		b.WriteString("  No disk data available\n")
	} else {
		for _, d := range r.Disks {
			fmt.Fprintf(&b, "  Mountpoint: %s\n", d.Mountpoint)
			fmt.Fprintf(&b, "    Total: %.2f GB\n", d.TotalGB)
			fmt.Fprintf(&b, "    Used: %.2f GB\n", d.UsedGB)
			fmt.Fprintf(&b, "    Free: %.2f GB\n", d.FreeGB)
		}
	}

	b.WriteString(Separator)
	return b.String()
}
