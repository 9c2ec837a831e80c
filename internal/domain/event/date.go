package event

import (
	"fmt"
	"time"
)

// DateLayout はイベント日付の表記（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// TimeLayout はイベント開始時刻の表記（HH:MM）
const TimeLayout = "15:04"

// Date はタイムゾーンを持たない暦日を表す
// ゼロ値は「未指定」を意味する
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate は YYYY-MM-DD 形式の文字列を Date に変換する
// 空文字列はゼロ値の Date を返す
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// MustParseDate は ParseDate の失敗時に panic する（テスト・固定データ用）
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf は time.Time の暦日部分を取り出す
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero は未指定かどうかを返す
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare は d と other を比較し、-1, 0, +1 を返す
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before は d が other より前の日付かを返す
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After は d が other より後の日付かを返す
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// In は指定ロケーションにおける d の 0 時を返す
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
