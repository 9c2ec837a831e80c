package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/static"
)

// CatalogSnapshot はカタログ全体を一つのキーにJSONで保持する
// 複数インスタンスで同じカタログを共有するために使う
type CatalogSnapshot struct {
	client *redis.Client
	key    string
}

// NewCatalogSnapshot は新しいCatalogSnapshotインスタンスを作成する
func NewCatalogSnapshot(client *redis.Client, key string) *CatalogSnapshot {
	return &CatalogSnapshot{client: client, key: key}
}

// Load はスナップショットからイベントを復元する
// キーが存在しない場合は catalog.ErrEmptyCatalogStore を返す
func (s *CatalogSnapshot) Load(ctx context.Context) ([]*event.Event, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, catalog.ErrEmptyCatalogStore
		}
		return nil, fmt.Errorf("スナップショット取得に失敗: %w", err)
	}

	var records []static.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("スナップショットの解析に失敗: %w", err)
	}
	if len(records) == 0 {
		return nil, catalog.ErrEmptyCatalogStore
	}
	return static.ToEntities(records)
}

// Save はイベント列をスナップショットとして保存する
// ttl が 0 の場合は期限なし
func (s *CatalogSnapshot) Save(ctx context.Context, events []*event.Event, ttl time.Duration) error {
	raw, err := json.Marshal(static.FromEntities(events))
	if err != nil {
		return fmt.Errorf("スナップショットの生成に失敗: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("スナップショット保存に失敗: %w", err)
	}
	return nil
}

// Delete はスナップショットを削除する
func (s *CatalogSnapshot) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("スナップショット削除に失敗: %w", err)
	}
	return nil
}

// インターフェースを満たしているか確認
var _ catalog.Source = (*CatalogSnapshot)(nil)
