package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Queries holds the PromQL expressions behind each report dimension. The
// defaults target node_exporter metric names; a YAML file referenced by
// QUERIES_FILE can override any subset of them.
type Queries struct {
	CPUIdle         string `yaml:"cpu_idle"`
	CPUCores        string `yaml:"cpu_cores"`
	MemoryTotal     string `yaml:"memory_total"`
	MemoryAvailable string `yaml:"memory_available"`
	DiskTotal       string `yaml:"disk_total"`
	DiskFree        string `yaml:"disk_free"`
}

func defaultQueries() Queries {
	return Queries{
		CPUIdle:         `avg by(instance)(rate(node_cpu_seconds_total{mode="idle"}[5m])) * 100`,
		CPUCores:        `count(node_cpu_seconds_total{mode="user"}) by (instance)`,
		MemoryTotal:     `node_memory_MemTotal_bytes`,
		MemoryAvailable: `node_memory_MemAvailable_bytes`,
		DiskTotal:       `node_filesystem_size_bytes`,
		DiskFree:        `node_filesystem_free_bytes`,
	}
}

type Config struct {
	PrometheusURL string        `env:"PROMETHEUS_URL" default:"http://localhost:9090"`
	QueryTimeout  time.Duration `env:"QUERY_TIMEOUT" default:"30s"`

	ReportsDir string `env:"REPORTS_DIR" default:"./reports"`

	CPUFreeThreshold  float64 `env:"CPU_FREE_THRESHOLD" default:"40"`
	MemFreeThreshold  float64 `env:"MEM_FREE_THRESHOLD" default:"40"`
	DiskFreeThreshold float64 `env:"DISK_FREE_THRESHOLD" default:"40"`

	Queries Queries

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
	LogFile   string `env:"LOG_FILE" default:""`

	Serve           bool          `env:"SERVE" default:"false"`
	Port            int           `env:"PORT" default:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" default:"45s"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() // ignore error if .env not found

	cfg := &Config{
		PrometheusURL:     getEnv("PROMETHEUS_URL", "http://localhost:9090"),
		QueryTimeout:      getEnvAsDuration("QUERY_TIMEOUT", 30*time.Second),
		ReportsDir:        getEnv("REPORTS_DIR", "./reports"),
		CPUFreeThreshold:  getEnvAsFloat("CPU_FREE_THRESHOLD", 40),
		MemFreeThreshold:  getEnvAsFloat("MEM_FREE_THRESHOLD", 40),
		DiskFreeThreshold: getEnvAsFloat("DISK_FREE_THRESHOLD", 40),
		Queries:           defaultQueries(),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LogFile:           getEnv("LOG_FILE", ""),
		Serve:             getEnvAsBool("SERVE", false),
		Port:              getEnvAsInt("PORT", 8080),
		ReadTimeout:       getEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:      getEnvAsDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RequestTimeout:    getEnvAsDuration("REQUEST_TIMEOUT", 45*time.Second),
	}

	if path := getEnv("QUERIES_FILE", ""); path != "" {
		if err := cfg.Queries.loadFile(path); err != nil {
			return nil, fmt.Errorf("invalid queries file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFile overlays query expressions from a YAML file. A missing file keeps
// the defaults, as does any field left empty in the file.
func (q *Queries) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var overlay Queries
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}

	if overlay.CPUIdle != "" {
		q.CPUIdle = overlay.CPUIdle
	}
	if overlay.CPUCores != "" {
		q.CPUCores = overlay.CPUCores
	}
	if overlay.MemoryTotal != "" {
		q.MemoryTotal = overlay.MemoryTotal
	}
	if overlay.MemoryAvailable != "" {
		q.MemoryAvailable = overlay.MemoryAvailable
	}
	if overlay.DiskTotal != "" {
		q.DiskTotal = overlay.DiskTotal
	}
	if overlay.DiskFree != "" {
		q.DiskFree = overlay.DiskFree
	}
	return nil
}

func (c *Config) Validate() error {
	if c.PrometheusURL == "" {
		return fmt.Errorf("prometheus URL must not be empty")
	}

	if c.QueryTimeout <= 0 {
		return fmt.Errorf("invalid query timeout: %s", c.QueryTimeout)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.LogLevel != "debug" && c.LogLevel != "info" &&
		c.LogLevel != "warn" && c.LogLevel != "error" {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}

	for name, v := range map[string]float64{
		"CPU_FREE_THRESHOLD":  c.CPUFreeThreshold,
		"MEM_FREE_THRESHOLD":  c.MemFreeThreshold,
		"DISK_FREE_THRESHOLD": c.DiskFreeThreshold,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("invalid %s: %g (must be between 0 and 100)", name, v)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
