package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrPublishInProgress = errors.New("別のプロセスがカタログを書き込み中です")
	ErrLockNotOwned      = errors.New("ロックの所有者ではありません")
)

// 所有者確認と削除をアトミックに行う
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// PublishLock はカタログの書き込みを一つのプロセスに限定するロック
// seed コマンドが PostgreSQL / Redis への書き込み中に保持する
type PublishLock struct {
	client *redis.Client
	key    string
	token  string
}

// AcquirePublishLock はカタログキーに対応するロックを取得する
// 取得できるまで retryDelay 間隔で最大 attempts 回試みる
func AcquirePublishLock(ctx context.Context, client *redis.Client, catalogKey string, ttl time.Duration, attempts int, retryDelay time.Duration) (*PublishLock, error) {
	l := &PublishLock{
		client: client,
		key:    fmt.Sprintf("lock:%s:publish", catalogKey),
		token:  uuid.NewString(),
	}
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		// SetNX を使用してロックを取得（キーが存在しない場合のみ設定）
		ok, err := client.SetNX(ctx, l.key, l.token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("ロック取得に失敗: %w", err)
		}
		if ok {
			return l, nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, ErrPublishInProgress
}

// Release はロックを解放する
func (l *PublishLock) Release(ctx context.Context) error {
	result, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Int()
	if err != nil {
		return fmt.Errorf("ロック解放に失敗: %w", err)
	}
	if result == 0 {
		return ErrLockNotOwned
	}
	return nil
}
