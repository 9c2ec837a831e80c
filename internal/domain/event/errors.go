package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound        = errors.New("イベントが見つかりません")
	ErrEventIDRequired      = errors.New("イベントIDは必須です")
	ErrEventTitleRequired   = errors.New("イベントタイトルは必須です")
	ErrInvalidCapacity      = errors.New("定員は1以上である必要があります")
	ErrInvalidRegisteredCnt = errors.New("登録者数は0以上である必要があります")
	ErrInvalidPrice         = errors.New("価格は0以上である必要があります")
	ErrUnknownCategory      = errors.New("未定義のカテゴリです")
	ErrInvalidDate          = errors.New("日付の形式が不正です")
	ErrInvalidTime          = errors.New("開始時刻の形式が不正です")
)
