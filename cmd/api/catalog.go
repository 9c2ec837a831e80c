package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/anshayy/eventmanagementandrsvp/internal/config"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/postgres"
	redisinfra "github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/redis"
	"github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/static"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/logger"
)

// loadCatalog は設定された読み込み元からカタログを構築する
// DB・Redis の接続は読み込み後に閉じる
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceEmbedded:
		return catalog.Load(ctx, static.NewSource())

	case config.CatalogSourcePostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.Load(ctx, postgres.NewCatalogRepository(db))

	case config.CatalogSourceRedis:
		client := redisinfra.NewClient(&cfg.Redis)
		defer client.Close()
		if err := redisinfra.Ping(ctx, client); err != nil {
			return nil, err
		}
		return catalog.Load(ctx, redisinfra.NewCatalogSnapshot(client, cfg.Redis.CatalogKey))

	default:
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownSource, cfg.Catalog.Source)
	}
}

func logCatalog(c *catalog.Catalog, source string) {
	stats := c.Stats()
	logger.Info("カタログを読み込みました",
		zap.String("source", source),
		zap.Int("events", stats.TotalEvents),
		zap.Int("countries", stats.TotalCountries),
		zap.Int("registrations", stats.TotalRegistrations),
	)
}
