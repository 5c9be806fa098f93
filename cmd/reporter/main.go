package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/mrgmcs/prometheus-node-report/internal/config"
	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/factory"
	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
	"github.com/mrgmcs/prometheus-node-report/internal/logging"
	"github.com/mrgmcs/prometheus-node-report/internal/prometheus"
	"github.com/mrgmcs/prometheus-node-report/internal/report"
	"github.com/mrgmcs/prometheus-node-report/internal/transport/http/router"
	"github.com/mrgmcs/prometheus-node-report/internal/transport/http/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg).With("run_id", uuid.NewString())
	logger.Info("starting prometheus-node-report", "prometheus_url", cfg.PrometheusURL)

	client, err := prometheus.NewClient(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize Prometheus client", "error", err)
		os.Exit(1)
	}

	services := factory.NewServices(client, cfg, logger)

	ctx := logging.WithLogger(context.Background(), logger)
	if err := run(ctx, services, cfg, logger); err != nil {
		logger.Error("report run failed", "error", err)
		os.Exit(1)
	}

	if !cfg.Serve {
		return
	}

	r := router.NewRouter(services, cfg, logger)
	httpServer := server.New(cfg, r, logger)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server gracefully", "error", err)
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}

// run executes one full pipeline: fetch and aggregate, write one report file
// per node, then print the free-capacity summary to stdout.
func run(ctx context.Context, services *core.Services, cfg *config.Config, logger *slog.Logger) error {
	reports, err := services.Report.BuildReports(ctx)
	if err != nil {
		return err
	}

	writer := report.NewWriter(cfg.ReportsDir, logger)
	for _, r := range reports {
		if _, err := writer.Write(r.NodeName, report.Render(r)); err != nil {
			return err
		}
	}

	thresholds := models.Thresholds{
		CPU:  cfg.CPUFreeThreshold,
		Mem:  cfg.MemFreeThreshold,
		Disk: cfg.DiskFreeThreshold,
	}
	summaries := services.Free.FreeCapacity(reports, thresholds)
	report.PrintSummary(os.Stdout, summaries, thresholds)

	return nil
}
