package handler

import "github.com/labstack/echo/v4"

// Handlers はルーティング対象のハンドラー一式
type Handlers struct {
	Event   *EventHandler
	RSVP    *RSVPHandler
	Catalog *CatalogHandler
	Health  *HealthHandler
}

// RegisterRoutes は /api/v1 配下のルートを登録する
func RegisterRoutes(e *echo.Echo, h Handlers) {
	v1 := e.Group("/api/v1")

	v1.GET("/health", h.Health.Check)

	v1.GET("/events", h.Event.List)
	v1.GET("/events/:id", h.Event.GetByID)
	v1.GET("/events/:id/calendar.ics", h.Event.Calendar)
	v1.POST("/events/:id/rsvp", h.RSVP.Submit)

	v1.GET("/stats", h.Catalog.Stats)
	v1.GET("/filters", h.Catalog.Filters)
}
