package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusInvalid = "invalid"
)

var (
	// HTTPRequestDuration is request latency in seconds, labelled by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"status"}, // success, invalid, failed
	)

	SheetAppends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_appends_total",
			Help: "Spreadsheet mirror appends by outcome",
		},
		[]string{"status"},
	)

	AdminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Admin login attempts by outcome",
		},
		[]string{"status"},
	)
)

// RecordHTTPRequestDuration observes one request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementContactSubmission counts a submission outcome.
func IncrementContactSubmission(status string) {
	ContactSubmissions.WithLabelValues(status).Inc()
}

// IncrementSheetAppend counts a spreadsheet append outcome.
func IncrementSheetAppend(status string) {
	SheetAppends.WithLabelValues(status).Inc()
}

// IncrementAdminLogin counts a login outcome.
func IncrementAdminLogin(status string) {
	AdminLogins.WithLabelValues(status).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
