// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mrlokans/quotebook/internal/entities"
)

var (
	storeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quotebook_store_operations_total",
		Help: "Quote store operations by operation and result.",
	}, []string{"operation", "result"})

	storeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quotebook_store_operation_duration_seconds",
		Help:    "Latency of quote store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	exportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quotebook_exports_total",
		Help: "Markdown export runs by trigger and result.",
	}, []string{"trigger", "result"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "quotebook_http_response_duration_seconds",
		Help: "Latency of HTTP requests in seconds.",
	}, []string{"method", "path"})
)

// Result classifies an operation error into a low-cardinality label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case entities.IsValidation(err):
		return "validation"
	case entities.IsNotFound(err):
		return "not_found"
	case entities.IsStorage(err):
		return "storage"
	default:
		return "error"
	}
}

// ObserveStoreOp records one store operation that started at start.
// Intended for use as: defer func() { metrics.ObserveStoreOp("create", start, err) }()
func ObserveStoreOp(operation string, start time.Time, err error) {
	storeDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	storeOperations.WithLabelValues(operation, Result(err)).Inc()
}

// ObserveExport records one markdown export run.
func ObserveExport(trigger string, err error) {
	exportRuns.WithLabelValues(trigger, Result(err)).Inc()
}

// GinMiddleware times every request, labelled by the matched route
// rather than the raw path to keep cardinality bounded.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		timer := prometheus.NewTimer(httpDuration.WithLabelValues(c.Request.Method, path))
		c.Next()
		timer.ObserveDuration()
	}
}
