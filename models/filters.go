package models

// Filters is the product listing filter state persisted under the
// "productFilters" key.
type Filters struct {
	Category    string  `json:"category"`
	MaxPrice    float64 `json:"maxPrice"`
	SortBy      string  `json:"sortBy"`
	SearchQuery string  `json:"searchQuery"`
}

// DefaultFilters returns the filter state used when nothing is persisted.
func DefaultFilters() Filters {
	return Filters{
		Category: "all",
		MaxPrice: 4000,
		SortBy:   "default",
	}
}
