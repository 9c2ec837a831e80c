package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CatalogHandler はカタログ全体に関する情報を返す
type CatalogHandler struct {
	catalogService CatalogServiceInterface
}

func NewCatalogHandler(catalogService CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Stats godoc
// @Summary カタログの集計値
// @Tags catalog
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (h *CatalogHandler) Stats(c echo.Context) error {
	s := h.catalogService.Stats(c.Request().Context())
	return c.JSON(http.StatusOK, StatsResponse{
		TotalEvents:        s.TotalEvents,
		TotalCountries:     s.TotalCountries,
		TotalRegistrations: s.TotalRegistrations,
	})
}

// Filters godoc
// @Summary 絞り込みの選択肢と初期値
// @Tags catalog
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Router /filters [get]
func (h *CatalogHandler) Filters(c echo.Context) error {
	opts := h.catalogService.Options(c.Request().Context())
	return c.JSON(http.StatusOK, FilterOptionsResponse{
		Categories: opts.Categories,
		Countries:  opts.Countries,
		Default:    toFilterSpecResponse(opts.Default),
	})
}
