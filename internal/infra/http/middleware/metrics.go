package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	purchasesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchases_completed_total",
			Help: "Total number of completed checkouts",
		},
		[]string{"purchase_type"},
	)

	accessRequestsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_requests_resolved_total",
			Help: "Total number of resolved access requests",
		},
		[]string{"resolution"},
	)

	leadsModerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_moderated_total",
			Help: "Total number of moderation decisions",
		},
		[]string{"decision"},
	)

	authorizationDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "authorization_denied_total",
			Help: "Total number of requests rejected by the access gate",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming handlers working behind the metrics wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordPurchase(purchaseType string) {
	purchasesCompleted.WithLabelValues(purchaseType).Inc()
}

func RecordAccessResolution(resolution string) {
	accessRequestsResolved.WithLabelValues(resolution).Inc()
}

func RecordModeration(decision string) {
	leadsModerated.WithLabelValues(decision).Inc()
}

func RecordAuthorizationDenied() {
	authorizationDenied.Inc()
}
