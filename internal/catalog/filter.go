package catalog

import (
	"strconv"
	"strings"
)

// Apply returns the subset of catalog matching every active predicate in c.
// The result is an order-preserving subsequence of the input; the inputs are
// never mutated. An empty catalog yields an empty result, and all-default
// criteria yield the input unchanged.
func Apply(catalog []Property, c FilterCriteria) []Property {
	out := make([]Property, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Property, c FilterCriteria) bool {
	if q := strings.TrimSpace(c.Query); q != "" {
		folded := strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Title), folded) &&
			!strings.Contains(strings.ToLower(p.Address), folded) {
			return false
		}
	}

	if !matchCategorical(c.Type, p.Type) {
		return false
	}
	if !matchCategorical(c.Status, p.Status) {
		return false
	}
	if !matchCategorical(c.Furnishing, p.Furnishing) {
		return false
	}
	if !matchCategorical(c.ConstructionStage, p.ConstructionStage) {
		return false
	}

	if !matchThreshold(c.Bedrooms, float64(p.Bedrooms)) {
		return false
	}
	if !matchThreshold(c.Bathrooms, p.Bathrooms) {
		return false
	}
	if c.Balconies != FilterAll {
		if p.Balconies == nil || !matchThreshold(c.Balconies, float64(*p.Balconies)) {
			return false
		}
	}

	if !matchPriceBucket(c.PriceBucket, p.Price) {
		return false
	}

	if !matchRange(c.PriceRange, PriceRangeMin, PriceRangeMax, p.Price) {
		return false
	}
	if !matchRange(c.CarpetAreaRange, CarpetAreaMin, CarpetAreaMax, p.CarpetArea) {
		return false
	}

	return true
}

// matchCategorical passes on the "all" sentinel, otherwise requires exact
// string equality. Records missing the attribute (empty string) never match a
// constrained value.
func matchCategorical(want, got string) bool {
	return want == FilterAll || want == got
}

// matchThreshold interprets "N+" as field >= N and a bare "N" as field == N.
// Unparsable values never match.
func matchThreshold(want string, field float64) bool {
	if want == FilterAll {
		return true
	}
	if rest, ok := strings.CutSuffix(want, "+"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return false
		}
		return field >= float64(n)
	}
	n, err := strconv.Atoi(want)
	if err != nil {
		return false
	}
	return field == float64(n)
}

// matchPriceBucket parses the legacy "min-max" / "min+" encoding. Bounds are
// inclusive; a missing max means unbounded above.
func matchPriceBucket(bucket string, price int) bool {
	if bucket == FilterAll {
		return true
	}
	if rest, ok := strings.CutSuffix(bucket, "+"); ok {
		min, err := strconv.Atoi(rest)
		if err != nil {
			return false
		}
		return price >= min
	}
	lo, hi, ok := strings.Cut(bucket, "-")
	if !ok {
		return false
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return false
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return false
	}
	return price >= min && price <= max
}

// matchRange treats a full-span range as "no constraint"; otherwise the value
// must lie within the inclusive bounds.
func matchRange(r [2]int, fullMin, fullMax, value int) bool {
	if r[0] == fullMin && r[1] == fullMax {
		return true
	}
	return value >= r[0] && value <= r[1]
}
