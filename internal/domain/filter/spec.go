// Package filter はイベントの絞り込み条件と、それを評価する純粋関数を提供する
package filter

import "github.com/anshayy/eventmanagementandrsvp/internal/domain/event"

// 「制限なし」を表す選択肢
const (
	AllCategories = "All Categories"
	AllCountries  = "All Countries"
)

// 価格帯の初期値（現状は絞り込みに使わない）
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

// DateRange は開催日の範囲（両端を含む）
// ゼロ値の Date はその側を制限しない
type DateRange struct {
	Start event.Date
	End   event.Date
}

// PriceRange は価格帯
// 保持はするが絞り込み条件としては評価しない
type PriceRange struct {
	Min float64
	Max float64
}

// Spec は現在の絞り込み条件を表す値
// 変更は With で新しい値を作って行う
type Spec struct {
	Search     string
	Category   string
	Location   string
	DateRange  DateRange
	PriceRange PriceRange
}

// Default は初期状態の条件を返す
func Default() Spec {
	return Spec{
		Category:   AllCategories,
		Location:   AllCountries,
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
	}
}

// Reset は初期状態の条件を返す
func (s Spec) Reset() Spec {
	return Default()
}

// With は更新を順に適用した新しい条件を返す（レシーバは変更しない）
func (s Spec) With(updates ...Update) Spec {
	next := s
	for _, u := range updates {
		next = u.apply(next)
	}
	return next
}

// IsDefault は全項目が初期値かを返す
func (s Spec) IsDefault() bool {
	return s == Default()
}
