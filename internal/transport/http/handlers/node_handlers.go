package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mrgmcs/prometheus-node-report/internal/core"
	"github.com/mrgmcs/prometheus-node-report/internal/core/models"
	"github.com/mrgmcs/prometheus-node-report/internal/report"
	"github.com/mrgmcs/prometheus-node-report/internal/transport/http/responses"
)

// NodeHandlers serves the aggregated node reports over HTTP. Every request
// runs the full pipeline against the live Prometheus, so responses always
// reflect current data.
type NodeHandlers struct {
	reports    core.ReportService
	free       core.FreeCapacityService
	thresholds models.Thresholds
	logger     *slog.Logger
}

func NewNodeHandlers(reports core.ReportService, free core.FreeCapacityService, thresholds models.Thresholds, logger *slog.Logger) *NodeHandlers {
	return &NodeHandlers{
		reports:    reports,
		free:       free,
		thresholds: thresholds,
		logger:     logger,
	}
}

// GetNodes handles GET /api/v1/nodes
func (h *NodeHandlers) GetNodes(w http.ResponseWriter, r *http.Request) {
	nodeReports, err := h.reports.BuildReports(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "failed to build node reports")
		return
	}

	responses.WriteJSON(w, responses.Success(nodeReports))
}

// GetNodeReport handles GET /api/v1/nodes/{nodeName}/report, returning the
// rendered text report for one node.
func (h *NodeHandlers) GetNodeReport(w http.ResponseWriter, r *http.Request) {
	nodeName := chi.URLParam(r, "nodeName")
	if nodeName == "" {
		responses.WriteBadRequest(w, errors.New("node name is required"))
		return
	}

	nodeReports, err := h.reports.BuildReports(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "failed to build node reports")
		return
	}

	for _, nr := range nodeReports {
		if nr.NodeName == nodeName {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte(report.Render(nr))); err != nil {
				h.logger.Error("failed to write report response", "error", err)
			}
			return
		}
	}

	h.logger.Warn("node not found",
		"node", nodeName,
		"request_id", middleware.GetReqID(r.Context()),
	)
	responses.WriteNotFound(w, "Node not found")
}

// GetFreeNodes handles GET /api/v1/nodes/free. The configured thresholds can
// be overridden per request with cpu, mem and disk query parameters.
func (h *NodeHandlers) GetFreeNodes(w http.ResponseWriter, r *http.Request) {
	thresholds, err := h.requestThresholds(r)
	if err != nil {
		responses.WriteBadRequest(w, err)
		return
	}

	nodeReports, err := h.reports.BuildReports(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "failed to build node reports")
		return
	}

	summaries := h.free.FreeCapacity(nodeReports, thresholds)
	responses.WriteJSON(w, responses.Success(struct {
		Thresholds models.Thresholds         `json:"thresholds"`
		Nodes      []models.NodeFreeCapacity `json:"nodes"`
	}{
		Thresholds: thresholds,
		Nodes:      summaries,
	}))
}

func (h *NodeHandlers) requestThresholds(r *http.Request) (models.Thresholds, error) {
	t := h.thresholds
	for param, target := range map[string]*float64{
		"cpu":  &t.CPU,
		"mem":  &t.Mem,
		"disk": &t.Disk,
	} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			return t, errors.New("threshold " + param + " must be a number between 0 and 100")
		}
		*target = v
	}
	return t, nil
}

func (h *NodeHandlers) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID := middleware.GetReqID(r.Context())

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request timeout",
			"operation", operation,
			"error", err.Error(),
			"request_id", requestID,
		)
		responses.WriteTimeout(w, "Request timeout")
	default:
		h.logger.Error("upstream query failed",
			"operation", operation,
			"error", err.Error(),
			"request_id", requestID,
		)
		responses.WriteUpstreamError(w, "Metrics query failed")
	}
}
