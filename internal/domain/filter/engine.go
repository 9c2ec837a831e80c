package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
)

// EffectiveQuery は評価に使う検索語を返す
// 条件側の Search が空でなければそれを優先し、空なら query を使う
func EffectiveQuery(spec Spec, query string) string {
	if spec.Search != "" {
		return spec.Search
	}
	return query
}

// ActiveFields は有効な（初期値・選択肢「制限なし」以外の）項目を返す
// PriceRange は評価しないため含めない
func ActiveFields(spec Spec, query string) []Field {
	var fields []Field
	if EffectiveQuery(spec, query) != "" {
		fields = append(fields, FieldSearch)
	}
	if spec.Category != AllCategories {
		fields = append(fields, FieldCategory)
	}
	if spec.Location != AllCountries {
		fields = append(fields, FieldLocation)
	}
	if !spec.DateRange.Start.IsZero() {
		fields = append(fields, FieldDateStart)
	}
	if !spec.DateRange.End.IsZero() {
		fields = append(fields, FieldDateEnd)
	}
	return fields
}

// Apply は条件をすべて満たすイベントを元の順序のまま返す
// 入力は変更せず、結果は入力と同じポインタを持つ（nil は返さない）
func Apply(events []*event.Event, spec Spec, query string) []*event.Event {
	m := newMatcher(spec, query)
	out := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if m.match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Matches は e が条件をすべて満たすかを返す
func Matches(e *event.Event, spec Spec, query string) bool {
	return newMatcher(spec, query).match(e)
}

// matcher は一回の評価の間だけ使う
// cases.Caser は状態を持つため共有しない
type matcher struct {
	spec  Spec
	term  string
	lower cases.Caser
}

func newMatcher(spec Spec, query string) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		spec:  spec,
		term:  lower.String(EffectiveQuery(spec, query)),
		lower: lower,
	}
}

func (m *matcher) match(e *event.Event) bool {
	if e == nil {
		return false
	}
	if m.term != "" &&
		!strings.Contains(m.lower.String(e.Title), m.term) &&
		!strings.Contains(m.lower.String(e.Description), m.term) {
		return false
	}
	if m.spec.Category != AllCategories && string(e.Category) != m.spec.Category {
		return false
	}
	if m.spec.Location != AllCountries && e.Location.Country != m.spec.Location {
		return false
	}
	if start := m.spec.DateRange.Start; !start.IsZero() && e.Date.Before(start) {
		return false
	}
	if end := m.spec.DateRange.End; !end.IsZero() && e.Date.After(end) {
		return false
	}
	return true
}
