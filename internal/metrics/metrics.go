// Package metrics defines Prometheus metrics for the workflow engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "employee_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "employee_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	PendingApprovals = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "employee_pending_approvals",
			Help: "Approval files currently in the pending bucket",
		},
	)

	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_decisions_total",
			Help: "Approval decisions by outcome",
		},
		[]string{"outcome"},
	)

	ActivityAppendsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "employee_activity_appends_total",
			Help: "Entries appended to the activity journal",
		},
	)

	SchedulerTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_scheduler_ticks_total",
			Help: "Scheduler ticks by task and result",
		},
		[]string{"task", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		WSConnections, PendingApprovals,
		DecisionsTotal, ActivityAppendsTotal, SchedulerTicksTotal,
	)
}
