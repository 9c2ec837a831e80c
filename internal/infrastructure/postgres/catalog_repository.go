package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
)

// catalogEventRow はDBの行を表す構造体
type catalogEventRow struct {
	ID              string         `db:"id"`
	Position        int            `db:"position"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	EventDate       time.Time      `db:"event_date"`
	EventTime       string         `db:"event_time"`
	City            string         `db:"city"`
	Country         string         `db:"country"`
	Venue           string         `db:"venue"`
	Address         string         `db:"address"`
	Category        string         `db:"category"`
	Image           string         `db:"image"`
	PriceAmount     float64        `db:"price_amount"`
	PriceCurrency   string         `db:"price_currency"`
	OrganizerName   string         `db:"organizer_name"`
	OrganizerEmail  string         `db:"organizer_email"`
	OrganizerPhone  string         `db:"organizer_phone"`
	Capacity        int            `db:"capacity"`
	RegisteredCount int            `db:"registered_count"`
	Tags            pq.StringArray `db:"tags"`
}

// toEntity はcatalogEventRowをEventエンティティに変換する
func (r *catalogEventRow) toEntity() *event.Event {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)
	return &event.Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        event.DateOf(r.EventDate),
		Time:        r.EventTime,
		Location: event.Location{
			City:    r.City,
			Country: r.Country,
			Venue:   r.Venue,
			Address: r.Address,
		},
		Category:        event.Category(r.Category),
		Image:           r.Image,
		Price:           event.Price{Amount: r.PriceAmount, Currency: r.PriceCurrency},
		Organizer:       event.Organizer{Name: r.OrganizerName, Email: r.OrganizerEmail, Phone: r.OrganizerPhone},
		Capacity:        r.Capacity,
		RegisteredCount: r.RegisteredCount,
		Tags:            tags,
	}
}

func toCatalogEventRow(position int, e *event.Event) catalogEventRow {
	return catalogEventRow{
		ID:              e.ID,
		Position:        position,
		Title:           e.Title,
		Description:     e.Description,
		EventDate:       e.Date.In(time.UTC),
		EventTime:       e.Time,
		City:            e.Location.City,
		Country:         e.Location.Country,
		Venue:           e.Location.Venue,
		Address:         e.Location.Address,
		Category:        string(e.Category),
		Image:           e.Image,
		PriceAmount:     e.Price.Amount,
		PriceCurrency:   e.Price.Currency,
		OrganizerName:   e.Organizer.Name,
		OrganizerEmail:  e.Organizer.Email,
		OrganizerPhone:  e.Organizer.Phone,
		Capacity:        e.Capacity,
		RegisteredCount: e.RegisteredCount,
		Tags:            pq.StringArray(e.Tags),
	}
}

const catalogColumns = `id, position, title, description, event_date, event_time,
	city, country, venue, address, category, image,
	price_amount, price_currency, organizer_name, organizer_email, organizer_phone,
	capacity, registered_count, tags`

// CatalogRepository はカタログのPostgreSQL実装
// 起動時の読み込みと、seed コマンドからの一括登録のみを提供する
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository はCatalogRepositoryを作成する
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Load は登録順にイベントを取得する
func (r *CatalogRepository) Load(ctx context.Context) ([]*event.Event, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_events ORDER BY position`

	var rows []catalogEventRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("カタログ取得に失敗しました: %w", err)
	}
	if len(rows) == 0 {
		return nil, catalog.ErrEmptyCatalogStore
	}

	events := make([]*event.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].toEntity()
	}
	return events, nil
}

// ReplaceAll はカタログ全体を一つのトランザクションで入れ替える
func (r *CatalogRepository) ReplaceAll(ctx context.Context, events []*event.Event) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗しました: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM catalog_events`); err != nil {
		return fmt.Errorf("既存カタログの削除に失敗しました: %w", err)
	}

	query := `
		INSERT INTO catalog_events (` + catalogColumns + `)
		VALUES (:id, :position, :title, :description, :event_date, :event_time,
			:city, :country, :venue, :address, :category, :image,
			:price_amount, :price_currency, :organizer_name, :organizer_email, :organizer_phone,
			:capacity, :registered_count, :tags)
	`
	for i, e := range events {
		row := toCatalogEventRow(i+1, e)
		if _, err = tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("イベント %q の登録に失敗しました: %w", e.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("コミットに失敗しました: %w", err)
	}
	return nil
}

// インターフェースを満たしているか確認
var _ catalog.Source = (*CatalogRepository)(nil)
