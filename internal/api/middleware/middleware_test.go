package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/logger"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/metrics"
)

// observeLogs はパッケージロガーを観測用に差し替える
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	original := logger.Get()
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(original) })
	return logs
}

func TestSetupMiddleware(t *testing.T) {
	e := echo.New()
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	SetupMiddleware(e, m)

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "test")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/test", "200")))
}

func TestSetupMiddleware_WithoutMetrics(t *testing.T) {
	e := echo.New()
	SetupMiddleware(e, nil)

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "test")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupMiddleware_RecoversPanic(t *testing.T) {
	e := echo.New()
	SetupMiddleware(e, nil)

	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	logs := observeLogs(t)
	e := echo.New()
	e.Use(RequestIDMiddleware(), RequestLogger())

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})

	req := httptest.NewRequest(http.MethodGet, "/test?q=india", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	entries := logs.FilterMessage("request completed").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "q=india", fields["query"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRequestLogger_WithError(t *testing.T) {
	logs := observeLogs(t)
	e := echo.New()
	e.Use(RequestLogger())

	e.GET("/error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad request")
	})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	entries := logs.FilterMessage("client error").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusBadRequest), entries[0].ContextMap()["status"])
}

func TestRequestLogger_ServerError(t *testing.T) {
	logs := observeLogs(t)
	e := echo.New()
	e.Use(RequestLogger())

	e.GET("/server-error", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "internal error")
	})

	req := httptest.NewRequest(http.MethodGet, "/server-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("server error").Len())
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// リクエストIDなしのリクエスト
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_WithExistingRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(echo.HeaderXRequestID, "existing-request-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// 既存のリクエストIDが維持されていることを確認
	assert.Equal(t, "existing-request-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestGenerateRequestID(t *testing.T) {
	id1 := generateRequestID()
	id2 := generateRequestID()

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
}

func TestPrometheusMiddleware(t *testing.T) {
	e := echo.New()
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	e.Use(PrometheusMiddleware(m))

	e.GET("/api/v1/events/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/"+id, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// パスパラメータではなくルートのパターンで集計される
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/events/:id", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var foundDuration bool
	for _, f := range families {
		if f.GetName() == "http_request_duration_seconds" {
			foundDuration = true
		}
	}
	assert.True(t, foundDuration, "http_request_duration_seconds should be recorded")
}

func TestPrometheusMiddleware_WithError(t *testing.T) {
	e := echo.New()
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	e.Use(PrometheusMiddleware(m))

	e.GET("/error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "full")
	})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/error", "409")))
}
