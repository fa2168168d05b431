package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()

	m.OperationsTotal.WithLabelValues("house", "ok").Inc()
	m.CacheHitsTotal.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("house", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal))
}

func TestNew_IndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	first := New()
	second := New()

	first.RateLimitedTotal.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(second.RateLimitedTotal))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.HTTPRequestsTotal.WithLabelValues("POST", "/api/operations", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `houses_http_requests_total{endpoint="/api/operations",method="POST",status="200"} 1`)
}
