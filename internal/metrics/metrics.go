// Package metrics provides Prometheus metrics collection for the roadworks service.
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

	// PotholeSheetsTotal counts pothole sheet writes by operation and outcome.
	PotholeSheetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pothole_sheets_total",
			Help: "Total number of pothole sheets recorded or updated",
		},
		[]string{"operation", "status"},
	)

	// MaterialKilogramsTotal accumulates derived material mass of recorded potholes.
	MaterialKilogramsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pothole_material_kilograms_total",
			Help: "Total derived material mass of recorded pothole sheets in kilograms",
		},
	)

	// FilterRejectionsTotal counts listing requests rejected by filter coercion.
	FilterRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_rejections_total",
			Help: "Total number of listing filters rejected for an invalid parameter",
		},
		[]string{"resource", "param"},
	)

	// JobSheetsTotal counts job sheets by formula and outcome.
	JobSheetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_sheets_total",
			Help: "Total number of job sheets computed",
		},
		[]string{"formula", "status"},
	)

	// JobTypeCacheOperationsTotal tracks job type catalog cache lookups.
	JobTypeCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_type_cache_operations_total",
			Help: "Total number of job type catalog cache lookups",
		},
		[]string{"result"},
	)

	// CircuitBreakerState is 0 when closed, 1 when open and 2 when half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPotholeSheet records a pothole sheet write. Material mass is only added on success.
func RecordPotholeSheet(operation, status string, materialKg float64) {
	PotholeSheetsTotal.WithLabelValues(operation, status).Inc()
	if status == "success" && materialKg > 0 {
		MaterialKilogramsTotal.Add(materialKg)
	}
}

// RecordFilterRejection records a listing filter rejected for the given parameter.
func RecordFilterRejection(resource, param string) {
	FilterRejectionsTotal.WithLabelValues(resource, param).Inc()
}

// RecordJobSheet records a job sheet computation.
func RecordJobSheet(formula, status string) {
	JobSheetsTotal.WithLabelValues(formula, status).Inc()
}

// RecordJobTypeCacheLookup records a catalog cache hit or miss.
func RecordJobTypeCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	JobTypeCacheOperationsTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState publishes the state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
