package prometheus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/mrgmcs/prometheus-node-report/internal/config"
	"github.com/mrgmcs/prometheus-node-report/internal/core"
)

// Client wraps the Prometheus HTTP API for instant vector queries.
type Client struct {
	api     promv1.API
	timeout time.Duration
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	c, err := api.NewClient(api.Config{Address: cfg.PrometheusURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus client: %w", err)
	}

	return &Client{
		api:     promv1.NewAPI(c),
		timeout: cfg.QueryTimeout,
		logger:  logger,
	}, nil
}

// Query runs an instant query at the current time and returns the resulting
// vector. Any transport or API error is returned as-is for the caller to
// abort on.
func (c *Client) Query(ctx context.Context, query string) (model.Vector, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, warnings, err := c.api.Query(ctx, query, time.Now())
	if err != nil {
		return nil, fmt.Errorf("query %q failed: %w", query, err)
	}
	if len(warnings) > 0 {
		c.logger.Warn("prometheus query returned warnings",
			"query", query,
			"warnings", warnings,
		)
	}

	vector, ok := result.(model.Vector)
	if !ok {
		return nil, fmt.Errorf("query %q: %w", query, core.ErrUnexpectedResultType)
	}

	return vector, nil
}
