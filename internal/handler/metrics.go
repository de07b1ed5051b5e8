package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/userboard/userboard/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "userboard_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "userboard_user_conflicts_total %d\n", snap.UserConflicts)
	writeMetric(w, "userboard_validation_failures_total %d\n", snap.ValidationFailures)
	writeMetric(w, "userboard_create_user_duration_seconds_count %d\n", snap.CreateUserDurationCount)
	writeMetric(w, "userboard_create_user_duration_seconds_sum %.6f\n", float64(snap.CreateUserDurationTotalNs)/1e9)
}

func writeMetric(w io.Writer, format string, value any) {
	// A failed write aborts the response anyway.
	_, _ = fmt.Fprintf(w, format, value)
}
