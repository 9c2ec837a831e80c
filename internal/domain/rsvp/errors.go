package rsvp

import "errors"

// RSVP ドメインのエラー定義
var (
	ErrEventIDRequired       = errors.New("イベントIDは必須です")
	ErrAttendeeNameRequired  = errors.New("氏名は必須です")
	ErrAttendeeEmailRequired = errors.New("メールアドレスは必須です")
	ErrEventFull             = errors.New("イベントは満席です")
)
