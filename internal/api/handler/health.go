package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	source string
	events int
}

// NewHealthHandler はHealthHandlerを作成する
// source と events は起動時に読み込んだカタログの情報
func NewHealthHandler(source string, events int) *HealthHandler {
	return &HealthHandler{source: source, events: events}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	CatalogSource string `json:"catalog_source"`
	CatalogEvents int    `json:"catalog_events"`
}

// Check はヘルスチェックを行う
// @Summary ヘルスチェック
// @Description アプリケーションの健全性を確認する
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		Timestamp:     time.Now().Format(time.RFC3339),
		CatalogSource: h.source,
		CatalogEvents: h.events,
	})
}
