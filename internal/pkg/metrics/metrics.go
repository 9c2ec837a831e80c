package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// 検索の総数（filters: 有効な条件をカンマ区切りで並べたもの、なしは "none"）
	SearchesTotal *prometheus.CounterVec

	// 検索結果の件数
	SearchResults prometheus.Histogram

	// RSVPの受付数（status: accepted, invalid, not_found, full）
	RSVPSubmissionsTotal *prometheus.CounterVec

	// 読み込んだカタログのイベント数（source）
	CatalogEvents *prometheus.GaugeVec
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_searches_total",
				Help: "Total number of catalog searches by active filter set",
			},
			[]string{"filters"},
		),
		SearchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "event_search_results",
				Help:    "Number of events returned per search",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
		),
		RSVPSubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rsvp_submissions_total",
				Help: "Total number of RSVP submissions",
			},
			[]string{"status"},
		),
		CatalogEvents: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catalog_events",
				Help: "Number of events in the loaded catalog",
			},
			[]string{"source"},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchesTotal,
		m.SearchResults,
		m.RSVPSubmissionsTotal,
		m.CatalogEvents,
	)

	return m
}

// ObserveSearch は検索一回分を記録する
func (m *Metrics) ObserveSearch(filters []string, results int) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(FilterLabel(filters)).Inc()
	m.SearchResults.Observe(float64(results))
}

// ObserveRSVP はRSVPの処理結果を記録する
func (m *Metrics) ObserveRSVP(status string) {
	if m == nil {
		return
	}
	m.RSVPSubmissionsTotal.WithLabelValues(status).Inc()
}

// SetCatalogSize は読み込んだカタログの件数を記録する
func (m *Metrics) SetCatalogSize(source string, n int) {
	if m == nil {
		return
	}
	m.CatalogEvents.WithLabelValues(source).Set(float64(n))
}

// FilterLabel は条件名の集合を順序に依存しないラベル値にする
func FilterLabel(filters []string) string {
	if len(filters) == 0 {
		return "none"
	}
	sorted := make([]string, len(filters))
	copy(sorted, filters)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
