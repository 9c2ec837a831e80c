package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anshayy/eventmanagementandrsvp/internal/application"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/filter"
)

func TestCatalogHandler_Stats(t *testing.T) {
	e := NewTestEcho()
	mockService := new(MockCatalogService)
	mockService.On("Stats", mock.Anything).Return(catalog.Stats{
		TotalEvents:        14,
		TotalCountries:     9,
		TotalRegistrations: 70862,
	})
	handler := NewCatalogHandler(mockService)

	c, rec := newContext(e, http.MethodGet, "/api/v1/stats", "", "")
	err := handler.Stats(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_events":14,"total_countries":9,"total_registrations":70862}`, rec.Body.String())
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_Filters(t *testing.T) {
	e := NewTestEcho()
	mockService := new(MockCatalogService)
	mockService.On("Options", mock.Anything).Return(&application.FilterOptions{
		Categories: []string{filter.AllCategories, "Technology"},
		Countries:  []string{filter.AllCountries, "USA"},
		Default:    filter.Default(),
	})
	handler := NewCatalogHandler(mockService)

	c, rec := newContext(e, http.MethodGet, "/api/v1/filters", "", "")
	err := handler.Filters(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp FilterOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"All Categories", "Technology"}, resp.Categories)
	assert.Equal(t, []string{"All Countries", "USA"}, resp.Countries)
	assert.Equal(t, FilterSpecResponse{
		Category:   "All Categories",
		Location:   "All Countries",
		PriceRange: PriceRangeResponse{Min: 0, Max: 1000},
	}, resp.Default)
}
