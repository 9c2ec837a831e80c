package handler

import (
	"context"

	"github.com/anshayy/eventmanagementandrsvp/internal/application"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/filter"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/rsvp"
)

// CatalogServiceInterface はカタログサービスのインターフェース
type CatalogServiceInterface interface {
	Search(ctx context.Context, spec filter.Spec, query string) *application.SearchResult
	GetEvent(ctx context.Context, id string) (*event.Event, error)
	Stats(ctx context.Context) catalog.Stats
	Options(ctx context.Context) *application.FilterOptions
}

// RSVPServiceInterface は参加申込サービスのインターフェース
type RSVPServiceInterface interface {
	Submit(ctx context.Context, input application.SubmitRSVPInput) (*rsvp.RSVP, error)
}

// CalendarServiceInterface はカレンダー出力サービスのインターフェース
type CalendarServiceInterface interface {
	Export(ctx context.Context, id string) ([]byte, error)
}
