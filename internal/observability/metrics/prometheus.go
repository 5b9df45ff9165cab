package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profilehub_http_requests_total",
			Help: "Total number of HTTP requests processed, labeled by endpoint and status code.",
		},
		[]string{"endpoint", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "profilehub_http_request_duration_seconds",
			Help:    "Histogram of latencies for HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	EnvelopeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profilehub_envelope_errors_total",
			Help: "Total number of error envelopes returned, labeled by endpoint and error kind.",
		},
		[]string{"endpoint", "kind"},
	)

	NotificationsDeliveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "profilehub_notifications_delivered_total",
			Help: "Total number of notifications returned and marked visited.",
		},
	)

	LanguageDetectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profilehub_language_detections_total",
			Help: "Language lookups through the sibling service, labeled by result (cache_hit, invoked, failed).",
		},
		[]string{"result"},
	)

	PictureDeletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profilehub_picture_deletions_total",
			Help: "Profile picture deletions, labeled by result.",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// InitMetrics registers the collectors with the default registry. Safe to call
// more than once.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(EnvelopeErrorsTotal)
		prometheus.MustRegister(NotificationsDeliveredTotal)
		prometheus.MustRegister(LanguageDetectionsTotal)
		prometheus.MustRegister(PictureDeletionsTotal)
	})
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
