package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contas_http_requests_total",
			Help: "Total number of HTTP requests by method, path pattern and status.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contas_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and path pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// routePattern returns the ServeMux pattern that matched the request,
// stripped of its method prefix. Path parameters stay as placeholders
// so the path label carries one value per route, not one per id.
func routePattern(r *http.Request) string {
	pattern := r.Pattern
	if pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

// Metrics creates middleware that records request counts and durations.
// Labels are resolved after the handler runs, once the mux has matched
// the route.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newStatusRecorder(w)

			start := time.Now()
			next.ServeHTTP(recorder, r)

			pattern := routePattern(r)
			requestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
			requestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(recorder.statusCode)).Inc()
		})
	}
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
