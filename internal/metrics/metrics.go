// Package metrics provides Prometheus metrics collection for the carton service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BoxSelectionsTotal tracks carton selections by confidence and reason.
	BoxSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_selections_total",
			Help: "Total number of carton selections",
		},
		[]string{"confidence", "reason"},
	)

	// BoxSelectionDuration tracks carton selection duration.
	BoxSelectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_selection_duration_seconds",
			Help:    "Carton selection duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// FeedbackInconsistenciesTotal tracks feedback rules the engine could not honor.
	FeedbackInconsistenciesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_inconsistencies_total",
			Help: "Total number of feedback rule inconsistencies detected during selection",
		},
		[]string{"kind"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSelection records metrics for a carton selection.
func RecordSelection(confidence, reason string, duration time.Duration) {
	if reason == "" {
		reason = "volumetric"
	}
	BoxSelectionDuration.Observe(duration.Seconds())
	BoxSelectionsTotal.WithLabelValues(confidence, reason).Inc()
}

// RecordFeedbackInconsistency records a feedback rule the engine had to ignore.
func RecordFeedbackInconsistency(kind string) {
	FeedbackInconsistenciesTotal.WithLabelValues(kind).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
