package domain

import "strings"

// ResultCap is the maximum number of products returned by a single search.
const ResultCap = 5

// SearchFilter is the resolved form of a gift search request.
type SearchFilter struct {
	// Category is matched as a case-insensitive substring of the category title.
	// Empty means no category restriction.
	Category string
	Range    PriceRange
	Band     PriceBand
	Limit    int
}

// NewSearchFilter resolves raw request parameters into a filter.
func NewSearchFilter(category, priceRange string) SearchFilter {
	r := ParsePriceRange(priceRange)
	return SearchFilter{
		Category: category,
		Range:    r,
		Band:     r.Band(),
		Limit:    ResultCap,
	}
}

// HasCategory reports whether the category predicate applies.
func (f SearchFilter) HasCategory() bool {
	return f.Category != ""
}

// CategoryNeedle returns the lower-cased category used for substring matching.
func (f SearchFilter) CategoryNeedle() string {
	return strings.ToLower(f.Category)
}
