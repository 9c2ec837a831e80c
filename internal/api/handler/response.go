package handler

import (
	"time"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/filter"
)

// 一覧で表示するタグの数
const tagPreviewSize = 3

type LocationResponse struct {
	City    string `json:"city" example:"San Francisco"`
	Country string `json:"country" example:"USA"`
	Venue   string `json:"venue" example:"Moscone Center"`
	Address string `json:"address" example:"747 Howard St, San Francisco, CA 94103"`
}

type PriceResponse struct {
	Amount   float64 `json:"amount" example:"299"`
	Currency string  `json:"currency" example:"USD"`
}

type OrganizerResponse struct {
	Name  string `json:"name" example:"Tech Events Inc."`
	Email string `json:"email" example:"info@techevents.com"`
	Phone string `json:"phone,omitempty" example:"+1-555-0123"`
}

// EventSummaryResponse は一覧用のイベント表現
type EventSummaryResponse struct {
	ID              string           `json:"id" example:"1"`
	Title           string           `json:"title" example:"Global Tech Summit 2024"`
	Description     string           `json:"description"`
	Date            string           `json:"date" example:"2024-12-15"`
	Time            string           `json:"time" example:"09:00"`
	Location        LocationResponse `json:"location"`
	Category        string           `json:"category" example:"Technology"`
	Image           string           `json:"image"`
	Price           PriceResponse    `json:"price"`
	PriceLabel      string           `json:"price_label" example:"299 USD"`
	IsFree          bool             `json:"is_free"`
	Capacity        int              `json:"capacity" example:"5000"`
	RegisteredCount int              `json:"registered_count" example:"3247"`
	AvailableSpots  int              `json:"available_spots" example:"1753"`
	NearlyFull      bool             `json:"nearly_full"`
	Tags            []string         `json:"tags"`
	MoreTags        int              `json:"more_tags"`
}

// EventDetailResponse は詳細用のイベント表現
type EventDetailResponse struct {
	EventSummaryResponse
	StartsAt  string            `json:"starts_at" example:"2024-12-15T09:00:00Z"`
	Organizer OrganizerResponse `json:"organizer"`
	IsFull    bool              `json:"is_full"`
}

type EventListResponse struct {
	Heading string                 `json:"heading" example:"All Events"`
	Matched int                    `json:"matched" example:"14"`
	Total   int                    `json:"total" example:"14"`
	Filters []string               `json:"filters"`
	Events  []EventSummaryResponse `json:"events"`
}

type StatsResponse struct {
	TotalEvents        int `json:"total_events" example:"14"`
	TotalCountries     int `json:"total_countries" example:"9"`
	TotalRegistrations int `json:"total_registrations" example:"70862"`
}

type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpecResponse は絞り込み条件の表現（ゼロ値の日付は空文字）
type FilterSpecResponse struct {
	Search     string             `json:"search"`
	Category   string             `json:"category"`
	Location   string             `json:"location"`
	DateRange  DateRangeResponse  `json:"date_range"`
	PriceRange PriceRangeResponse `json:"price_range"`
}

type FilterOptionsResponse struct {
	Categories []string           `json:"categories"`
	Countries  []string           `json:"countries"`
	Default    FilterSpecResponse `json:"default"`
}

func toEventSummaryResponse(e *event.Event) EventSummaryResponse {
	tags, more := e.TagPreview(tagPreviewSize)
	if tags == nil {
		tags = []string{}
	}
	return EventSummaryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.String(),
		Time:        e.Time,
		Location: LocationResponse{
			City:    e.Location.City,
			Country: e.Location.Country,
			Venue:   e.Location.Venue,
			Address: e.Location.Address,
		},
		Category:        string(e.Category),
		Image:           e.Image,
		Price:           PriceResponse{Amount: e.Price.Amount, Currency: e.Price.Currency},
		PriceLabel:      e.PriceLabel(),
		IsFree:          e.IsFree(),
		Capacity:        e.Capacity,
		RegisteredCount: e.RegisteredCount,
		AvailableSpots:  e.AvailableSpots(),
		NearlyFull:      e.IsNearlyFull(),
		Tags:            tags,
		MoreTags:        more,
	}
}

func toEventDetailResponse(e *event.Event, loc *time.Location) EventDetailResponse {
	summary := toEventSummaryResponse(e)
	summary.Tags = append([]string{}, e.Tags...)
	summary.MoreTags = 0
	return EventDetailResponse{
		EventSummaryResponse: summary,
		StartsAt:             e.StartsAt(loc).Format(time.RFC3339),
		Organizer: OrganizerResponse{
			Name:  e.Organizer.Name,
			Email: e.Organizer.Email,
			Phone: e.Organizer.Phone,
		},
		IsFull: e.IsFull(),
	}
}

func toFilterSpecResponse(s filter.Spec) FilterSpecResponse {
	return FilterSpecResponse{
		Search:   s.Search,
		Category: s.Category,
		Location: s.Location,
		DateRange: DateRangeResponse{
			Start: s.DateRange.Start.String(),
			End:   s.DateRange.End.String(),
		},
		PriceRange: PriceRangeResponse{Min: s.PriceRange.Min, Max: s.PriceRange.Max},
	}
}
