package middleware

import (
	"strconv"
	"time"

	"houses/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Record must wrap the logger middleware, which resolves handler errors into
// the final response status.
func (m *MetricsMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Route templates keep label cardinality bounded; unmatched paths share one label.
		endpoint := c.Path()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method

		m.metrics.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(method, endpoint, status).Observe(time.Since(start).Seconds())

		return err
	}
}
