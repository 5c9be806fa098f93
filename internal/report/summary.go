package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
)

// PrintSummary writes the free-capacity console block: a header naming the
// thresholds, then one breakdown per qualifying node listing only the disks
// that individually cleared the disk threshold. Node names are emphasized
// when stdout is a terminal; piped output stays plain.
func PrintSummary(w io.Writer, summaries []models.NodeFreeCapacity, t models.Thresholds) {
	fmt.Fprintf(w, "\nNodes with more than %g%% CPU free, %g%% Memory free, and %g%% Disk free:\n\n",
		t.CPU, t.Mem, t.Disk)

	nodeName := color.New(color.FgGreen, color.Bold)
	for _, s := range summaries {
		fmt.Fprintf(w, "Node: %s\n", nodeName.Sprint(s.NodeName))
		fmt.Fprintf(w, "  CPU free: %.2f%%\n", s.CPUFreePercent)
		fmt.Fprintf(w, "  Memory free: %.2f GB (%.2f%%)\n", s.MemoryFreeGB, s.MemoryFreePercent)
		fmt.Fprintln(w, "  Disk(s) with sufficient free space:")
		for _, d := range s.Disks {
			fmt.Fprintf(w, "    Mountpoint: %s, Free: %.2f GB (%.2f%%)\n",
				d.Mountpoint, d.FreeGB, d.FreePercent)
		}
		fmt.Fprintln(w, Separator)
	}
}
