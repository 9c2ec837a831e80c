package event

import (
	"strconv"
	"time"
)

// nearlyFullRatio は「残りわずか」と判定する残席率のしきい値
const nearlyFullRatio = 0.2

// Location は開催地を表す
// 絞り込みに使うのは Country のみで、他は表示専用
type Location struct {
	City    string
	Country string
	Venue   string
	Address string
}

// Price は参加費を表す（Amount が 0 なら無料）
type Price struct {
	Amount   float64
	Currency string
}

// Organizer は主催者の連絡先
type Organizer struct {
	Name  string
	Email string
	Phone string
}

// Event はカタログ上のイベントを表す
// 読み込み後は変更しない
type Event struct {
	ID              string
	Title           string
	Description     string
	Date            Date
	Time            string // HH:MM（開催地のローカル時刻）
	Location        Location
	Category        Category
	Image           string
	Price           Price
	Organizer       Organizer
	Capacity        int
	RegisteredCount int
	Tags            []string
}

// Validate はカタログ読み込み時の検証を行う
// RegisteredCount <= Capacity は慣習であり検証しない
func (e *Event) Validate() error {
	if e.ID == "" {
		return ErrEventIDRequired
	}
	if e.Title == "" {
		return ErrEventTitleRequired
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, e.Time); err != nil {
		return ErrInvalidTime
	}
	if e.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if e.RegisteredCount < 0 {
		return ErrInvalidRegisteredCnt
	}
	if e.Price.Amount < 0 {
		return ErrInvalidPrice
	}
	if !e.Category.IsValid() {
		return ErrUnknownCategory
	}
	return nil
}

// StartsAt は日付と開始時刻を合わせた時点を返す
// 時刻が解釈できない場合はその日の 0 時とする
func (e *Event) StartsAt(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	start := e.Date.In(loc)
	if tod, err := time.Parse(TimeLayout, e.Time); err == nil {
		start = start.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
	}
	return start
}

// AvailableSpots は残席数を返す（保存はせず毎回算出する）
func (e *Event) AvailableSpots() int {
	return e.Capacity - e.RegisteredCount
}

// IsNearlyFull は残席が定員の20%未満かを返す
func (e *Event) IsNearlyFull() bool {
	return float64(e.AvailableSpots()) < float64(e.Capacity)*nearlyFullRatio
}

// IsFull は残席がないかを返す
func (e *Event) IsFull() bool {
	return e.AvailableSpots() <= 0
}

// IsFree は無料イベントかを返す
func (e *Event) IsFree() bool {
	return e.Price.Amount == 0
}

// PriceLabel は一覧表示用の価格表記を返す
func (e *Event) PriceLabel() string {
	if e.IsFree() {
		return "Free"
	}
	return strconv.FormatFloat(e.Price.Amount, 'f', -1, 64) + " " + e.Price.Currency
}

// TagPreview は先頭 n 件のタグと、省略したタグ数を返す
func (e *Event) TagPreview(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(e.Tags) <= n {
		return e.Tags, 0
	}
	return e.Tags[:n:n], len(e.Tags) - n
}
