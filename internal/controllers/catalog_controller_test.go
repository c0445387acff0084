package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/jeebendu/glassy-property-hunter-97/internal/catalog"
	"github.com/jeebendu/glassy-property-hunter-97/internal/routes"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

func newCatalogRouter() *mux.Router {
	ctrl := NewCatalogController(catalog.NewService(catalog.SeedProperties()))
	router := mux.NewRouter()
	router.HandleFunc(routes.FeaturedProperty, ctrl.ListFeatured).Methods("GET")
	router.HandleFunc(routes.Properties, ctrl.ListProperties).Methods("GET")
	router.HandleFunc(routes.PropertyByID, ctrl.GetProperty).Methods("GET")
	return router
}

func getJSON(t *testing.T, router *mux.Router, url string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil && rec.Code < 400 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestListPropertiesNoFilters(t *testing.T) {
	router := newCatalogRouter()

	var result catalog.SearchResult
	code := getJSON(t, router, routes.Properties, &result)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, len(catalog.SeedProperties()), result.Total)
	require.False(t, result.HasMore)
}

func TestListPropertiesFilterByType(t *testing.T) {
	router := newCatalogRouter()

	var result catalog.SearchResult
	code := getJSON(t, router, routes.Properties+"?type="+catalog.TypeApartment, &result)
	require.Equal(t, http.StatusOK, code)
	require.NotZero(t, result.Total)
	for _, p := range result.Properties {
		require.Equal(t, catalog.TypeApartment, p.Type)
	}
}

func TestListPropertiesQueryAndPagination(t *testing.T) {
	router := newCatalogRouter()

	var first catalog.SearchResult
	code := getJSON(t, router, routes.Properties+"?limit=2", &first)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, first.Properties, 2)
	require.True(t, first.HasMore)

	var second catalog.SearchResult
	code = getJSON(t, router, routes.Properties+"?limit=2&offset=2", &second)
	require.Equal(t, http.StatusOK, code)
	require.NotEqual(t, first.Properties[0].ID, second.Properties[0].ID)
}

func TestListPropertiesRejectsUnknownParameter(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, routes.Properties+"?bedroms=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, utils.ErrCodeValidation, resp.Code)
	require.Contains(t, resp.Message, "bedroms")
}

func TestListPropertiesRejectsMalformedRange(t *testing.T) {
	router := newCatalogRouter()

	code := getJSON(t, router, routes.Properties+"?priceRange=banana", nil)
	require.Equal(t, http.StatusBadRequest, code)

	code = getJSON(t, router, routes.Properties+"?priceRange=100-1", nil)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestListPropertiesPriceRange(t *testing.T) {
	router := newCatalogRouter()

	var result catalog.SearchResult
	code := getJSON(t, router, routes.Properties+"?priceRange=1000000-2000000", &result)
	require.Equal(t, http.StatusOK, code)
	for _, p := range result.Properties {
		require.GreaterOrEqual(t, p.Price, 1000000)
		require.LessOrEqual(t, p.Price, 2000000)
	}
}

func TestGetPropertyByID(t *testing.T) {
	router := newCatalogRouter()

	var p catalog.Property
	code := getJSON(t, router, "/api/v1/properties/1", &p)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "1", p.ID)

	code = getJSON(t, router, "/api/v1/properties/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestListFeatured(t *testing.T) {
	router := newCatalogRouter()

	var featured []catalog.Property
	code := getJSON(t, router, routes.FeaturedProperty, &featured)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, featured)
	for _, p := range featured {
		require.True(t, p.Featured)
	}
}
