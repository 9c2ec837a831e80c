package catalog

import "errors"

// Catalog ドメインのエラー定義
var (
	ErrNilEvent          = errors.New("イベントが nil です")
	ErrDuplicateEventID  = errors.New("イベントIDが重複しています")
	ErrUnknownSource     = errors.New("未対応のカタログソースです")
	ErrEmptyCatalogStore = errors.New("カタログが登録されていません")
)
