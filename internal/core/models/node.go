package models

// DiskUsage summarizes one mountpoint of a node.
type DiskUsage struct {
	Mountpoint string  `json:"mountpoint"`
	TotalGB    float64 `json:"totalGb"`
	UsedGB     float64 `json:"usedGb"`
	FreeGB     float64 `json:"freeGb"`
}

// NodeReport is the aggregated per-node view built from all metric queries.
// It is constructed once per run and never mutated afterwards.
type NodeReport struct {
	NodeName       string      `json:"nodeName"`
	IP             string      `json:"ip"`
	CPUCores       int         `json:"cpuCores"`
	CPUUsedPercent float64     `json:"cpuUsedPercent"`
	CPUFreePercent float64     `json:"cpuFreePercent"`
	MemoryTotalGB  float64     `json:"memoryTotalGb"`
	MemoryUsedGB   float64     `json:"memoryUsedGb"`
	MemoryFreeGB   float64     `json:"memoryFreeGb"`
	Disks          []DiskUsage `json:"disks"`
}
