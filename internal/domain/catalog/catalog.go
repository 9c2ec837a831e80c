// Package catalog はプロセス起動時に固定される読み取り専用のイベント一覧を扱う
package catalog

import (
	"context"
	"fmt"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
)

// Source はカタログの読み込み元
// 起動時に一度だけ呼ばれる
type Source interface {
	Load(ctx context.Context) ([]*event.Event, error)
}

// Catalog は順序付きの読み取り専用イベント一覧
type Catalog struct {
	events []*event.Event
	byID   map[string]*event.Event
}

// Stats はカタログ全体の集計値
type Stats struct {
	TotalEvents        int
	TotalCountries     int
	TotalRegistrations int
}

// New は検証済みのカタログを作成する
// 不正なレコードや重複IDはエラーとする
func New(events []*event.Event) (*Catalog, error) {
	c := &Catalog{
		events: make([]*event.Event, 0, len(events)),
		byID:   make(map[string]*event.Event, len(events)),
	}
	for i, e := range events {
		if e == nil {
			return nil, fmt.Errorf("%d件目: %w", i+1, ErrNilEvent)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("イベント %q の検証に失敗しました: %w", e.ID, err)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEventID, e.ID)
		}
		c.events = append(c.events, e)
		c.byID[e.ID] = e
	}
	return c, nil
}

// Load は Source から読み込んでカタログを作成する
func Load(ctx context.Context, src Source) (*Catalog, error) {
	events, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("カタログの読み込みに失敗しました: %w", err)
	}
	return New(events)
}

// Events は元の順序のままイベントを返す
// 返すスライスは複製だが、要素は同じポインタ
func (c *Catalog) Events() []*event.Event {
	out := make([]*event.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len はイベント数を返す
func (c *Catalog) Len() int {
	return len(c.events)
}

// Get はIDからイベントを取得する
func (c *Catalog) Get(id string) (*event.Event, error) {
	e, ok := c.byID[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return e, nil
}

// Countries は開催国を初出順で重複なく返す
func (c *Catalog) Countries() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.events {
		if _, ok := seen[e.Location.Country]; ok {
			continue
		}
		seen[e.Location.Country] = struct{}{}
		out = append(out, e.Location.Country)
	}
	return out
}

// Stats は集計値を算出する（キャッシュしない）
func (c *Catalog) Stats() Stats {
	s := Stats{TotalEvents: len(c.events)}
	countries := make(map[string]struct{})
	for _, e := range c.events {
		countries[e.Location.Country] = struct{}{}
		s.TotalRegistrations += e.RegisteredCount
	}
	s.TotalCountries = len(countries)
	return s
}
