package static

import (
	"fmt"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
)

// Record はカタログファイル・スナップショット上のイベント表現
// YAML（組み込みカタログ）と JSON（Redis スナップショット）で共用する
type Record struct {
	ID          string          `yaml:"id" json:"id"`
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description" json:"description"`
	Date        string          `yaml:"date" json:"date"`
	Time        string          `yaml:"time" json:"time"`
	Location    LocationRecord  `yaml:"location" json:"location"`
	Category    string          `yaml:"category" json:"category"`
	Image       string          `yaml:"image" json:"image"`
	Price       PriceRecord     `yaml:"price" json:"price"`
	Organizer   OrganizerRecord `yaml:"organizer" json:"organizer"`
	Capacity    int             `yaml:"capacity" json:"capacity"`
	Registered  int             `yaml:"registered_count" json:"registeredCount"`
	Tags        []string        `yaml:"tags" json:"tags"`
}

type LocationRecord struct {
	City    string `yaml:"city" json:"city"`
	Country string `yaml:"country" json:"country"`
	Venue   string `yaml:"venue" json:"venue"`
	Address string `yaml:"address" json:"address"`
}

type PriceRecord struct {
	Amount   float64 `yaml:"amount" json:"amount"`
	Currency string  `yaml:"currency" json:"currency"`
}

type OrganizerRecord struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
	Phone string `yaml:"phone" json:"phone"`
}

// ToEntity は Record を Event エンティティに変換する
func (r *Record) ToEntity() (*event.Event, error) {
	date, err := event.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("イベント %q: %w", r.ID, err)
	}
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)
	return &event.Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Time:        r.Time,
		Location: event.Location{
			City:    r.Location.City,
			Country: r.Location.Country,
			Venue:   r.Location.Venue,
			Address: r.Location.Address,
		},
		Category: event.Category(r.Category),
		Image:    r.Image,
		Price: event.Price{
			Amount:   r.Price.Amount,
			Currency: r.Price.Currency,
		},
		Organizer: event.Organizer{
			Name:  r.Organizer.Name,
			Email: r.Organizer.Email,
			Phone: r.Organizer.Phone,
		},
		Capacity:        r.Capacity,
		RegisteredCount: r.Registered,
		Tags:            tags,
	}, nil
}

// FromEntity は Event エンティティを Record に変換する
func FromEntity(e *event.Event) Record {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)
	return Record{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.String(),
		Time:        e.Time,
		Location: LocationRecord{
			City:    e.Location.City,
			Country: e.Location.Country,
			Venue:   e.Location.Venue,
			Address: e.Location.Address,
		},
		Category: string(e.Category),
		Image:    e.Image,
		Price: PriceRecord{
			Amount:   e.Price.Amount,
			Currency: e.Price.Currency,
		},
		Organizer: OrganizerRecord{
			Name:  e.Organizer.Name,
			Email: e.Organizer.Email,
			Phone: e.Organizer.Phone,
		},
		Capacity:   e.Capacity,
		Registered: e.RegisteredCount,
		Tags:       tags,
	}
}

// ToEntities は Record の列を順序を保って変換する
func ToEntities(records []Record) ([]*event.Event, error) {
	events := make([]*event.Event, 0, len(records))
	for i := range records {
		e, err := records[i].ToEntity()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// FromEntities は Event の列を順序を保って変換する
func FromEntities(events []*event.Event) []Record {
	records := make([]Record, len(events))
	for i, e := range events {
		records[i] = FromEntity(e)
	}
	return records
}
