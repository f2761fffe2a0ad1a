package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the MCP server.
type Metrics struct {
	ToolCalls *prometheus.CounterVec // labels: tool, outcome={ok,validation_error,upstream_error}

	// Upstream HKO API metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: data_type, outcome={success,transport_error,decode_error}
	UpstreamDuration *prometheus.HistogramVec // labels: data_type
}

// NewMetrics creates and registers all server metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hko_mcp",
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hko_mcp",
			Name:      "upstream_requests_total",
			Help:      "HKO API requests by data type and outcome.",
		}, []string{"data_type", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hko_mcp",
			Name:      "upstream_request_duration_seconds",
			Help:      "HKO API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"data_type"}),
	}

	prometheus.MustRegister(
		m.ToolCalls,
		m.UpstreamRequests,
		m.UpstreamDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ToolCalls:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hko_mcp", Name: "tool_calls_total"}, []string{"tool", "outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hko_mcp", Name: "upstream_requests_total"}, []string{"data_type", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "hko_mcp", Name: "upstream_request_duration_seconds"}, []string{"data_type"}),
	}
}
