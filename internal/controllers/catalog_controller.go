package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jeebendu/glassy-property-hunter-97/internal/catalog"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

type CatalogController struct {
	catalog *catalog.Service
}

func NewCatalogController(svc *catalog.Service) *CatalogController {
	return &CatalogController{catalog: svc}
}

// ---------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------

// ListProperties answers a filtered, paginated catalog query. Filter fields
// arrive as query parameters; unknown parameters are rejected so typos do
// not silently widen a search.
func (c *CatalogController) ListProperties(w http.ResponseWriter, r *http.Request) {
	criteria, offset, limit, err := parseCriteria(r)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	result := c.catalog.Search(criteria, offset, limit)
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetProperty returns a single catalog record by ID.
func (c *CatalogController) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := c.catalog.GetByID(id)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// ListFeatured returns the landing-page records.
func (c *CatalogController) ListFeatured(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.catalog.Featured())
}

// ---------------------------------------------------------------------
// Query parsing
// ---------------------------------------------------------------------

func parseCriteria(r *http.Request) (catalog.FilterCriteria, int, int, error) {
	criteria := catalog.DefaultCriteria()
	offset := 0
	limit := catalog.DefaultBatchSize

	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch key {
		case catalog.FieldType:
			criteria.Type = value
		case catalog.FieldPriceBucket:
			criteria.PriceBucket = value
		case catalog.FieldBedrooms:
			criteria.Bedrooms = value
		case catalog.FieldBathrooms:
			criteria.Bathrooms = value
		case catalog.FieldStatus:
			criteria.Status = value
		case catalog.FieldBalconies:
			criteria.Balconies = value
		case catalog.FieldFurnishing:
			criteria.Furnishing = value
		case catalog.FieldConstructionStage:
			criteria.ConstructionStage = value
		case catalog.FieldQuery:
			criteria.Query = value
		case catalog.FieldPriceRange:
			bounds, err := parseRange(value)
			if err != nil {
				return criteria, 0, 0, fmt.Errorf("invalid %s: %v", key, err)
			}
			criteria.PriceRange = bounds
		case catalog.FieldCarpetAreaRange:
			bounds, err := parseRange(value)
			if err != nil {
				return criteria, 0, 0, fmt.Errorf("invalid %s: %v", key, err)
			}
			criteria.CarpetAreaRange = bounds
		case "offset":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return criteria, 0, 0, fmt.Errorf("invalid offset: %q", value)
			}
			offset = n
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return criteria, 0, 0, fmt.Errorf("invalid limit: %q", value)
			}
			limit = n
		default:
			return criteria, 0, 0, fmt.Errorf("unknown query parameter: %q", key)
		}
	}

	return criteria, offset, limit, nil
}

// parseRange accepts "min-max" with both bounds required.
func parseRange(s string) ([2]int, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return [2]int{}, fmt.Errorf("expected min-max, got %q", s)
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return [2]int{}, err
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return [2]int{}, err
	}
	if min > max {
		return [2]int{}, fmt.Errorf("min %d greater than max %d", min, max)
	}
	return [2]int{min, max}, nil
}
