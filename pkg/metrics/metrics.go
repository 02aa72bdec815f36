// Package metrics provides Prometheus instrumentation for the data layer.
//
// Query latency is recorded by gorm callbacks installed in pkg/database;
// repositories count their public operations by outcome. Expose the
// registry with Handler wherever the embedding program serves HTTP.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DBQueryDuration tracks ORM query latency.
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "salesdesk",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of database queries in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"operation"}, // "select" | "insert" | "update" | "delete" | "exec"
	)

	// StoreOperations counts data-layer calls by entity, operation and outcome.
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salesdesk",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total data access operations.",
		},
		[]string{"entity", "operation", "status"}, // status: "ok" | "error"
	)
)

// DefaultRegistry is the Prometheus registry used by salesdesk.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		DBQueryDuration,
		StoreOperations,
	)
}

// Handler returns an http.HandlerFunc that exposes the metrics page.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// ObserveDBQuery records a DB query duration with a simple timer:
//
//	defer metrics.ObserveDBQuery("select", time.Now())
func ObserveDBQuery(operation string, start time.Time) {
	DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordStoreOp counts one data-layer operation.
func RecordStoreOp(entity, operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreOperations.WithLabelValues(entity, operation, status).Inc()
}
