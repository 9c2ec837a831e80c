package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/metrics"
)

// ルートに一致しなかったリクエストのパスラベル
const unmatchedPath = "unmatched"

// PrometheusMiddleware はHTTPメトリクスを収集するミドルウェア
func PrometheusMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()

			// ラベルの種類が増えないようルートのパターンを使う
			path := c.Path()
			if path == "" || path == "/*" {
				path = unmatchedPath
			}

			method := c.Request().Method
			statusCode := strconv.Itoa(statusOf(c, err))

			// メトリクス記録
			m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

			return err
		}
	}
}
