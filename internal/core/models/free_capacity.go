package models

// Thresholds are minimum free percentages a node must clear for CPU,
// memory and disk.
type Thresholds struct {
	CPU  float64 `json:"cpu"`
	Mem  float64 `json:"mem"`
	Disk float64 `json:"disk"`
}

// DiskFreeCapacity is one mountpoint that clears the disk threshold.
type DiskFreeCapacity struct {
	Mountpoint  string  `json:"mountpoint"`
	FreeGB      float64 `json:"freeGb"`
	FreePercent float64 `json:"freePercent"`
}

// NodeFreeCapacity summarizes a node that clears all three thresholds.
// Disks contains only the mountpoints that individually qualify.
type NodeFreeCapacity struct {
	NodeName          string             `json:"nodeName"`
	CPUFreePercent    float64            `json:"cpuFreePercent"`
	MemoryFreeGB      float64            `json:"memoryFreeGb"`
	MemoryFreePercent float64            `json:"memoryFreePercent"`
	Disks             []DiskFreeCapacity `json:"disks"`
}
