package filter

import "github.com/anshayy/eventmanagementandrsvp/internal/domain/event"

// Field は絞り込み条件の項目
type Field string

const (
	FieldSearch     Field = "search"
	FieldCategory   Field = "category"
	FieldLocation   Field = "location"
	FieldDateStart  Field = "date_start"
	FieldDateEnd    Field = "date_end"
	FieldPriceRange Field = "price_range"
)

// Update は一項目の更新
// 実装はこのパッケージ内の型に限られる
type Update interface {
	Field() Field
	apply(Spec) Spec
}

type (
	SetSearch     string
	SetCategory   string
	SetLocation   string
	SetDateStart  event.Date
	SetDateEnd    event.Date
	SetPriceRange PriceRange
)

func (u SetSearch) Field() Field     { return FieldSearch }
func (u SetCategory) Field() Field   { return FieldCategory }
func (u SetLocation) Field() Field   { return FieldLocation }
func (u SetDateStart) Field() Field  { return FieldDateStart }
func (u SetDateEnd) Field() Field    { return FieldDateEnd }
func (u SetPriceRange) Field() Field { return FieldPriceRange }

func (u SetSearch) apply(s Spec) Spec {
	s.Search = string(u)
	return s
}

func (u SetCategory) apply(s Spec) Spec {
	s.Category = string(u)
	return s
}

func (u SetLocation) apply(s Spec) Spec {
	s.Location = string(u)
	return s
}

func (u SetDateStart) apply(s Spec) Spec {
	s.DateRange.Start = event.Date(u)
	return s
}

func (u SetDateEnd) apply(s Spec) Spec {
	s.DateRange.End = event.Date(u)
	return s
}

func (u SetPriceRange) apply(s Spec) Spec {
	s.PriceRange = PriceRange(u)
	return s
}
