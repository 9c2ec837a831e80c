// Command seed は組み込みカタログを PostgreSQL / Redis に書き込む
// API を CATALOG_SOURCE=postgres または redis で起動する前に一度実行する
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/anshayy/eventmanagementandrsvp/internal/config"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/postgres"
	redisinfra "github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/redis"
	"github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/static"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/logger"
)

func main() {
	targets := flag.String("targets", "postgres,redis", "書き込み先（postgres, redis をカンマ区切り）")
	ttl := flag.Duration("redis-ttl", 0, "Redis スナップショットの有効期限（0 は無期限）")
	timeout := flag.Duration("timeout", 30*time.Second, "処理全体のタイムアウト")
	lock := flag.Bool("lock", true, "Redis のロックで同時実行を防ぐ")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, *targets, *ttl, *timeout, *lock); err != nil {
		logger.Error("シードに失敗しました", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, targets string, ttl, timeout time.Duration, lock bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// 書き込む前に組み込みカタログ全体を検証する
	cat, err := catalog.Load(ctx, static.NewSource())
	if err != nil {
		return err
	}
	events := cat.Events()

	client := redisinfra.NewClient(&cfg.Redis)
	defer client.Close()
	if lock {
		if err := redisinfra.Ping(ctx, client); err != nil {
			return err
		}
		l, err := redisinfra.AcquirePublishLock(ctx, client, cfg.Redis.CatalogKey, timeout, 5, time.Second)
		if err != nil {
			return err
		}
		defer func() {
			if err := l.Release(context.Background()); err != nil {
				logger.Warn("ロック解放に失敗しました", zap.Error(err))
			}
		}()
	}

	for _, target := range strings.Split(targets, ",") {
		target = strings.TrimSpace(target)
		switch target {
		case config.CatalogSourcePostgres:
			err = seedPostgres(ctx, cfg, events)
		case config.CatalogSourceRedis:
			err = seedRedis(ctx, cfg, client, events, ttl)
		case "":
			continue
		default:
			err = fmt.Errorf("%w: %s", catalog.ErrUnknownSource, target)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", target, err)
		}
		logger.Info("カタログを書き込みました", zap.String("target", target), zap.Int("events", len(events)))
	}
	return nil
}

func seedPostgres(ctx context.Context, cfg *config.Config, events []*event.Event) error {
	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
		return err
	}
	return postgres.NewCatalogRepository(db).ReplaceAll(ctx, events)
}

func seedRedis(ctx context.Context, cfg *config.Config, client *redis.Client, events []*event.Event, ttl time.Duration) error {
	if err := redisinfra.Ping(ctx, client); err != nil {
		return err
	}
	return redisinfra.NewCatalogSnapshot(client, cfg.Redis.CatalogKey).Save(ctx, events, ttl)
}
