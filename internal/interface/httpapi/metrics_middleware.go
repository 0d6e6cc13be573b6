// internal/interface/httpapi/metrics_middleware.go
package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"trackdesk-service/pkg/metrics"
)

// RequestMetrics records request latency and counts server-side failures per
// route.
func RequestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			m.RequestDuration.Observe(time.Since(start).Seconds())

			if c.Response().Status >= http.StatusInternalServerError {
				m.ErrorsCount.WithLabelValues(c.Path()).Inc()
			}
			return err
		}
	}
}
