package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"github.com/anshayy/eventmanagementandrsvp/internal/application"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/filter"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/rsvp"
)

// MockCatalogService はCatalogServiceInterfaceのモック
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Search(ctx context.Context, spec filter.Spec, query string) *application.SearchResult {
	args := m.Called(ctx, spec, query)
	return args.Get(0).(*application.SearchResult)
}

func (m *MockCatalogService) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockCatalogService) Stats(ctx context.Context) catalog.Stats {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Stats)
}

func (m *MockCatalogService) Options(ctx context.Context) *application.FilterOptions {
	args := m.Called(ctx)
	return args.Get(0).(*application.FilterOptions)
}

// MockRSVPService はRSVPServiceInterfaceのモック
type MockRSVPService struct {
	mock.Mock
}

func (m *MockRSVPService) Submit(ctx context.Context, input application.SubmitRSVPInput) (*rsvp.RSVP, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsvp.RSVP), args.Error(1)
}

// MockCalendarService はCalendarServiceInterfaceのモック
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) Export(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestEvent() *event.Event {
	return &event.Event{
		ID:          "1",
		Title:       "Global Tech Summit 2024",
		Description: "Join industry leaders",
		Date:        event.MustParseDate("2024-12-15"),
		Time:        "09:00",
		Location: event.Location{
			City:    "San Francisco",
			Country: "USA",
			Venue:   "Moscone Center",
			Address: "747 Howard St",
		},
		Category:        event.CategoryTechnology,
		Price:           event.Price{Amount: 299, Currency: "USD"},
		Organizer:       event.Organizer{Name: "Tech Events Inc.", Email: "info@techevents.com"},
		Capacity:        5000,
		RegisteredCount: 4500,
		Tags:            []string{"AI", "Cloud", "Startups", "Networking", "Innovation"},
	}
}

// newContext はテスト用コンテキストを作る
// id が空でなければパスパラメータ :id として設定する
func newContext(e *echo.Echo, method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}
