package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/filter"
)

type EventHandler struct {
	catalogService  CatalogServiceInterface
	calendarService CalendarServiceInterface
	loc             *time.Location
}

// NewEventHandler はEventHandlerを作成する
// loc は開始日時（starts_at）の表示に使うタイムゾーン
func NewEventHandler(catalogService CatalogServiceInterface, calendarService CalendarServiceInterface, loc *time.Location) *EventHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &EventHandler{catalogService: catalogService, calendarService: calendarService, loc: loc}
}

// ListEventsRequest は一覧の絞り込み条件
// category / location を省略した場合は「制限なし」として扱う
type ListEventsRequest struct {
	Query    string  `query:"q" example:"india"`
	Search   string  `query:"search" example:"festival"`
	Category string  `query:"category" example:"Technology"`
	Location string  `query:"location" example:"Japan"`
	Start    string  `query:"start" validate:"omitempty,datetime=2006-01-02" example:"2024-12-01"`
	End      string  `query:"end" validate:"omitempty,datetime=2006-01-02" example:"2024-12-10"`
	MinPrice float64 `query:"min_price" validate:"gte=0" example:"0"`
	MaxPrice float64 `query:"max_price" validate:"gtefield=MinPrice" example:"1000"`
}

// toSpec は検証済みのリクエストを絞り込み条件に変換する
func (r *ListEventsRequest) toSpec() (filter.Spec, error) {
	start, err := event.ParseDate(r.Start)
	if err != nil {
		return filter.Spec{}, fmt.Errorf("start: %w", err)
	}
	end, err := event.ParseDate(r.End)
	if err != nil {
		return filter.Spec{}, fmt.Errorf("end: %w", err)
	}
	category := r.Category
	if category == "" {
		category = filter.AllCategories
	}
	location := r.Location
	if location == "" {
		location = filter.AllCountries
	}
	return filter.Default().With(
		filter.SetSearch(r.Search),
		filter.SetCategory(category),
		filter.SetLocation(location),
		filter.SetDateStart(start),
		filter.SetDateEnd(end),
		filter.SetPriceRange(filter.PriceRange{Min: r.MinPrice, Max: r.MaxPrice}),
	), nil
}

// List godoc
// @Summary イベント一覧を検索
// @Description 検索語・カテゴリ・国・開催日で絞り込みます（条件はすべてAND）
// @Tags events
// @Produce json
// @Param q query string false "ヒーロー検索の語（search が空のときに使う）"
// @Param search query string false "検索語"
// @Param category query string false "カテゴリ"
// @Param location query string false "国"
// @Param start query string false "開催日の下限（YYYY-MM-DD）"
// @Param end query string false "開催日の上限（YYYY-MM-DD）"
// @Success 200 {object} EventListResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	req := ListEventsRequest{
		MinPrice: filter.DefaultMinPrice,
		MaxPrice: filter.DefaultMaxPrice,
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "クエリパラメータの形式が不正です")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	spec, err := req.toSpec()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result := h.catalogService.Search(c.Request().Context(), spec, req.Query)

	events := make([]EventSummaryResponse, len(result.Events))
	for i, e := range result.Events {
		events[i] = toEventSummaryResponse(e)
	}
	filters := make([]string, len(result.Active))
	for i, f := range result.Active {
		filters[i] = string(f)
	}
	return c.JSON(http.StatusOK, EventListResponse{
		Heading: result.Heading(),
		Matched: result.Matched,
		Total:   result.Total,
		Filters: filters,
		Events:  events,
	})
}

// GetByID godoc
// @Summary イベントを取得
// @Description 指定IDのイベントを取得します
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Success 200 {object} EventDetailResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	e, err := h.catalogService.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toEventDetailResponse(e, h.loc))
}

// Calendar godoc
// @Summary イベントをiCalendar形式で取得
// @Tags events
// @Produce text/calendar
// @Param id path string true "イベントID"
// @Success 200 {string} string
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id}/calendar.ics [get]
func (h *EventHandler) Calendar(c echo.Context) error {
	id := c.Param("id")
	data, err := h.calendarService.Export(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="event-%s.ics"`, id))
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", data)
}
