package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mochimap",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of full node operations.",
	}, []string{"operation", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mochimap",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of full node operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// NodeClient tracks metrics for calls to the Mochimo full node.
type NodeClient struct{}

// NewNodeClient constructs a metrics collector for node calls.
func NewNodeClient() *NodeClient {
	return &NodeClient{}
}

// Observe records a single node call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeRequestsTotal.WithLabelValues(operation, status).Inc()
	nodeRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
