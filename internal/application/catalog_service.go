package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/filter"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/metrics"
)

// EventCatalog はサービスが参照するカタログ
// *catalog.Catalog が実装する
type EventCatalog interface {
	Events() []*event.Event
	Get(id string) (*event.Event, error)
	Countries() []string
	Stats() catalog.Stats
}

type CatalogService struct {
	catalog EventCatalog
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewCatalogService は CatalogService を作成する
// m は nil でもよい
func NewCatalogService(c EventCatalog, m *metrics.Metrics, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{catalog: c, metrics: m, log: log}
}

// SearchResult は検索一回分の結果
type SearchResult struct {
	Events  []*event.Event
	Matched int
	Total   int
	Active  []filter.Field
}

// Heading は結果一覧の見出しを返す
// 全件が一致した場合は "All Events"
func (r *SearchResult) Heading() string {
	if r.Matched == r.Total {
		return "All Events"
	}
	return fmt.Sprintf("%d Events Found", r.Matched)
}

// FilterOptions は絞り込み画面の選択肢と初期値
type FilterOptions struct {
	Categories []string
	Countries  []string
	Default    filter.Spec
}

// Search はカタログ全体に条件を適用する
func (s *CatalogService) Search(ctx context.Context, spec filter.Spec, query string) *SearchResult {
	all := s.catalog.Events()
	matched := filter.Apply(all, spec, query)
	active := filter.ActiveFields(spec, query)

	labels := make([]string, len(active))
	for i, f := range active {
		labels[i] = string(f)
	}
	s.metrics.ObserveSearch(labels, len(matched))
	s.log.Debug("イベント検索",
		zap.Strings("filters", labels),
		zap.Int("matched", len(matched)),
		zap.Int("total", len(all)),
	)

	return &SearchResult{
		Events:  matched,
		Matched: len(matched),
		Total:   len(all),
		Active:  active,
	}
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	if id == "" {
		return nil, event.ErrEventIDRequired
	}
	return s.catalog.Get(id)
}

func (s *CatalogService) Stats(ctx context.Context) catalog.Stats {
	return s.catalog.Stats()
}

// Options はカテゴリ・国の選択肢を「制限なし」を先頭にして返す
func (s *CatalogService) Options(ctx context.Context) *FilterOptions {
	categories := []string{filter.AllCategories}
	for _, c := range event.Categories() {
		categories = append(categories, string(c))
	}
	countries := append([]string{filter.AllCountries}, s.catalog.Countries()...)
	return &FilterOptions{
		Categories: categories,
		Countries:  countries,
		Default:    filter.Default(),
	}
}
