package catalog

import (
	"fmt"
	"strings"
)

// FilterOption pairs a filter value with its display label.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	PropertyTypeOptions = []FilterOption{
		{Value: FilterAll, Label: "All Types"},
		{Value: TypeHouse, Label: "House"},
		{Value: TypeApartment, Label: "Apartment"},
		{Value: TypeCondo, Label: "Condo"},
		{Value: TypeTownhouse, Label: "Townhouse"},
	}

	PriceBucketOptions = []FilterOption{
		{Value: FilterAll, Label: "Any Price"},
		{Value: "0-1000000", Label: "Under $1M"},
		{Value: "1000000-2000000", Label: "$1M - $2M"},
		{Value: "2000000-5000000", Label: "$2M - $5M"},
		{Value: "5000000+", Label: "$5M+"},
	}

	BedroomOptions = []FilterOption{
		{Value: FilterAll, Label: "Any"},
		{Value: "1+", Label: "1+"},
		{Value: "2+", Label: "2+"},
		{Value: "3+", Label: "3+"},
		{Value: "4+", Label: "4+"},
		{Value: "5+", Label: "5+"},
	}

	BathroomOptions = []FilterOption{
		{Value: FilterAll, Label: "Any"},
		{Value: "1+", Label: "1+"},
		{Value: "2+", Label: "2+"},
		{Value: "3+", Label: "3+"},
		{Value: "4+", Label: "4+"},
	}

	StatusOptions = []FilterOption{
		{Value: FilterAll, Label: "All"},
		{Value: StatusForSale, Label: "For Sale"},
		{Value: StatusForRent, Label: "For Rent"},
		{Value: StatusPending, Label: "Pending"},
		{Value: StatusSold, Label: "Sold"},
	}
)

var optionsByField = map[string][]FilterOption{
	FieldType:        PropertyTypeOptions,
	FieldPriceBucket: PriceBucketOptions,
	FieldBedrooms:    BedroomOptions,
	FieldBathrooms:   BathroomOptions,
	FieldStatus:      StatusOptions,
}

// ActiveFilter is one removable chip: a criteria field currently deviating
// from its default, with a display label.
type ActiveFilter struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// ActiveFilters projects the subset of criteria fields that would actually
// constrain a result set. The activation rules mirror Apply exactly: a field
// appears here iff its predicate is active, so a full-span range never
// produces a chip.
func ActiveFilters(c FilterCriteria) []ActiveFilter {
	var out []ActiveFilter

	appendSentinel := func(field, value string) {
		if value == FilterAll {
			return
		}
		out = append(out, ActiveFilter{Field: field, Value: value, Label: filterLabel(field, value)})
	}

	appendSentinel(FieldType, c.Type)
	appendSentinel(FieldPriceBucket, c.PriceBucket)
	appendSentinel(FieldBedrooms, c.Bedrooms)
	appendSentinel(FieldBathrooms, c.Bathrooms)
	appendSentinel(FieldStatus, c.Status)
	appendSentinel(FieldBalconies, c.Balconies)
	appendSentinel(FieldFurnishing, c.Furnishing)
	appendSentinel(FieldConstructionStage, c.ConstructionStage)

	if c.PriceRange != [2]int{PriceRangeMin, PriceRangeMax} {
		v := fmt.Sprintf("%d-%d", c.PriceRange[0], c.PriceRange[1])
		out = append(out, ActiveFilter{Field: FieldPriceRange, Value: v, Label: "Price " + v})
	}
	if c.CarpetAreaRange != [2]int{CarpetAreaMin, CarpetAreaMax} {
		v := fmt.Sprintf("%d-%d", c.CarpetAreaRange[0], c.CarpetAreaRange[1])
		out = append(out, ActiveFilter{Field: FieldCarpetAreaRange, Value: v, Label: "Area " + v + " sqft"})
	}
	if q := strings.TrimSpace(c.Query); q != "" {
		out = append(out, ActiveFilter{Field: FieldQuery, Value: q, Label: `"` + q + `"`})
	}

	return out
}

func filterLabel(field, value string) string {
	for _, opt := range optionsByField[field] {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
