// Package static はバイナリに組み込んだ YAML カタログを読み込む
package static

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
)

//go:embed events.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Events []Record `yaml:"events"`
}

// Source は YAML カタログを読み込む catalog.Source 実装
type Source struct {
	data []byte
}

// NewSource は組み込みカタログを読み込む Source を作成する
func NewSource() *Source {
	return &Source{data: embeddedCatalog}
}

// NewSourceFromBytes は任意の YAML を読み込む Source を作成する
func NewSourceFromBytes(data []byte) *Source {
	return &Source{data: data}
}

// Load は YAML を Event の列に変換する
func (s *Source) Load(ctx context.Context) ([]*event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := Decode(s.data)
	if err != nil {
		return nil, err
	}
	return ToEntities(records)
}

// Decode は YAML カタログを Record の列に変換する
// 未知のキーはエラーとする
func Decode(data []byte) ([]Record, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("カタログYAMLの解析に失敗しました: %w", err)
	}
	return f.Events, nil
}

var _ catalog.Source = (*Source)(nil)
