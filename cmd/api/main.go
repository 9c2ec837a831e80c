package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anshayy/eventmanagementandrsvp/internal/api"
	"github.com/anshayy/eventmanagementandrsvp/internal/api/handler"
	"github.com/anshayy/eventmanagementandrsvp/internal/api/middleware"
	"github.com/anshayy/eventmanagementandrsvp/internal/application"
	"github.com/anshayy/eventmanagementandrsvp/internal/config"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/logger"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/metrics"
)

func main() {
	// .env があれば環境変数に読み込む（既存の値は上書きしない）
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("設定が不正です", zap.Error(err))
	}
	loc, _ := cfg.Catalog.Location()

	// カタログ読み込み（起動時に一度だけ）
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.LoadTimeout)
	cat, err := loadCatalog(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("カタログの読み込みに失敗しました",
			zap.String("source", cfg.Catalog.Source),
			zap.Error(err),
		)
	}
	logCatalog(cat, cfg.Catalog.Source)

	m := metrics.New()
	m.SetCatalogSize(cfg.Catalog.Source, cat.Len())

	// サービス初期化
	catalogService := application.NewCatalogService(cat, m, logger.Named("catalog"))
	rsvpService := application.NewRSVPService(cat, m, logger.Named("rsvp"))
	calendarService := application.NewCalendarService(cat)

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupMiddleware(e, m)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth(cfg.Metrics))
	handler.RegisterRoutes(e, handler.Handlers{
		Event:   handler.NewEventHandler(catalogService, calendarService, loc),
		RSVP:    handler.NewRSVPHandler(rsvpService, catalogService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Health:  handler.NewHealthHandler(cfg.Catalog.Source, cat.Len()),
	})

	// Graceful shutdown
	go func() {
		logger.Info("サーバーを起動します", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := e.Start(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("サーバーシャットダウンエラー", zap.Error(err))
		return
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
