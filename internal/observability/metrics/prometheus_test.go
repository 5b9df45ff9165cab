package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitMetrics_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		InitMetrics()
		InitMetrics()
	})
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(LanguageDetectionsTotal.WithLabelValues("cache_hit"))
	LanguageDetectionsTotal.WithLabelValues("cache_hit").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LanguageDetectionsTotal.WithLabelValues("cache_hit")))
}

func TestMetricsHandler(t *testing.T) {
	InitMetrics()
	EnvelopeErrorsTotal.WithLabelValues("questions", "invocation").Inc()

	w := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "profilehub_envelope_errors_total")
}
