package middleware

import (
	"net/http"
	"time"

	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/infra/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counters and latency per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle records the request. Routes are labelled by their pattern, not the
// raw path, so ids do not blow up label cardinality.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		done := m.metrics.RequestStarted()

		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		done(c.Request().Method, path, responseStatus(c, err), time.Since(start))

		return err
	}
}

// responseStatus predicts the status the error handler will write for err.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
