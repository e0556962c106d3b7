package models

// SortOption names one of the fixed listing sort strategies.
type SortOption string

const (
	SortRelevant  SortOption = "relevant"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
	SortReviews   SortOption = "reviews"
)

// Platform-wide hourly price bound for the browse price slider.
const (
	PriceRangeFloor = 0
	PriceRangeCeil  = 200
)

// Browse view modes and their page sizes.
const (
	ViewGrid = "grid"
	ViewList = "list"

	PageSizeGrid = 6
	PageSizeList = 8
)

// PageSizeForView maps a view mode to its page size. Unknown modes get the
// grid size.
func PageSizeForView(view string) int {
	if view == ViewList {
		return PageSizeList
	}
	return PageSizeGrid
}

// PriceRange is a closed interval; both ends are inclusive.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QueryParams is the complete, serializable description of what the user
// currently wants to see in the browse listing. The zero values produced by
// DefaultQueryParams mean "no constraint" for every filter field.
type QueryParams struct {
	SearchText     string     `json:"searchText"`
	Category       string     `json:"category"` // empty means no category constraint
	PriceRange     PriceRange `json:"priceRange"`
	MinRating      float64    `json:"minRating"`
	RequiredSkills []string   `json:"requiredSkills"`
	SortOption     SortOption `json:"sortOption"`
	Page           int        `json:"page"` // 1-indexed
	PageSize       int        `json:"pageSize"`
}

// DefaultQueryParams returns the parameters a freshly opened browse view has.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		PriceRange: PriceRange{Min: PriceRangeFloor, Max: PriceRangeCeil},
		SortOption: SortRelevant,
		Page:       1,
		PageSize:   PageSizeGrid,
	}
}
