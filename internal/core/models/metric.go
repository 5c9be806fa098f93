package models

// MetricSample is one instant-query sample for a single instance.
type MetricSample struct {
	Value  float64
	Labels map[string]string
}

// InstanceMetrics maps an instance ("IP:port") to its sample for one query.
type InstanceMetrics map[string]MetricSample

// DiskMetrics maps instance to mountpoint to a byte count for one
// filesystem query.
type DiskMetrics map[string]map[string]float64
