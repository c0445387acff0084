package catalog

// FilterAll is the sentinel meaning "no constraint" for categorical and
// threshold fields.
const FilterAll = "all"

// Full spans for the range filters. A range equal to its full span is treated
// as "no constraint" even though it is represented as concrete bounds.
const (
	PriceRangeMin = 0
	PriceRangeMax = 50_000_000

	CarpetAreaMin = 0
	CarpetAreaMax = 20_000
)

// Criteria field names, used by Clear and by the active-chip projection.
const (
	FieldType              = "type"
	FieldPriceBucket       = "price"
	FieldBedrooms          = "bedrooms"
	FieldBathrooms         = "bathrooms"
	FieldStatus            = "status"
	FieldBalconies         = "balconies"
	FieldFurnishing        = "furnishing"
	FieldConstructionStage = "constructionStage"
	FieldPriceRange        = "priceRange"
	FieldCarpetAreaRange   = "carpetAreaRange"
	FieldQuery             = "query"
)

// FilterCriteria is the closed, explicitly typed filter record. Categorical
// and threshold fields hold either the "all" sentinel or a specific value;
// range fields hold inclusive [min,max] bounds; Query is matched
// case-insensitively against title and address.
type FilterCriteria struct {
	Type              string
	PriceBucket       string
	Bedrooms          string
	Bathrooms         string
	Status            string
	Balconies         string
	Furnishing        string
	ConstructionStage string
	PriceRange        [2]int
	CarpetAreaRange   [2]int
	Query             string
}

// DefaultCriteria returns criteria with every field at its "no constraint"
// default.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Type:              FilterAll,
		PriceBucket:       FilterAll,
		Bedrooms:          FilterAll,
		Bathrooms:         FilterAll,
		Status:            FilterAll,
		Balconies:         FilterAll,
		Furnishing:        FilterAll,
		ConstructionStage: FilterAll,
		PriceRange:        [2]int{PriceRangeMin, PriceRangeMax},
		CarpetAreaRange:   [2]int{CarpetAreaMin, CarpetAreaMax},
		Query:             "",
	}
}

// Clear resets exactly the named field to its default, leaving every other
// field untouched. Unknown names are ignored.
func (c *FilterCriteria) Clear(field string) {
	switch field {
	case FieldType:
		c.Type = FilterAll
	case FieldPriceBucket:
		c.PriceBucket = FilterAll
	case FieldBedrooms:
		c.Bedrooms = FilterAll
	case FieldBathrooms:
		c.Bathrooms = FilterAll
	case FieldStatus:
		c.Status = FilterAll
	case FieldBalconies:
		c.Balconies = FilterAll
	case FieldFurnishing:
		c.Furnishing = FilterAll
	case FieldConstructionStage:
		c.ConstructionStage = FilterAll
	case FieldPriceRange:
		c.PriceRange = [2]int{PriceRangeMin, PriceRangeMax}
	case FieldCarpetAreaRange:
		c.CarpetAreaRange = [2]int{CarpetAreaMin, CarpetAreaMax}
	case FieldQuery:
		c.Query = ""
	}
}
