package listing

import "freelanceai/models"

// Controller is the single owner of a browse view's query parameters. Every
// mutation recomputes the derived result set on the next read; there is no
// incremental diffing, which is fine at catalog sizes of tens to low
// hundreds of records.
//
// A Controller is not safe for concurrent use; each view (or assistant
// session) holds its own.
type Controller struct {
	catalog []models.Freelancer
	params  models.QueryParams
}

// NewController creates a controller over the given catalog with default
// parameters.
func NewController(catalog []models.Freelancer) *Controller {
	return &Controller{catalog: catalog, params: models.DefaultQueryParams()}
}

// ResumeController restores a controller from previously serialized
// parameters, e.g. an assistant session pulled out of redis.
func ResumeController(catalog []models.Freelancer, params models.QueryParams) *Controller {
	return &Controller{catalog: catalog, params: normalizeParams(params)}
}

// normalizeParams fills fields left at their zero value with the browse
// defaults, so parameters deserialized from a request body or the context
// store mean "no constraint" for anything they omit. A zero PriceRange
// would otherwise be the closed interval [0,0] and match nothing.
func normalizeParams(params models.QueryParams) models.QueryParams {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = models.PageSizeGrid
	}
	if params.PriceRange == (models.PriceRange{}) {
		params.PriceRange = models.PriceRange{Min: models.PriceRangeFloor, Max: models.PriceRangeCeil}
	}
	if params.SortOption == "" {
		params.SortOption = models.SortRelevant
	}
	return params
}

// Params returns a copy of the current query parameters.
func (c *Controller) Params() models.QueryParams { return c.params }

func (c *Controller) SetSearchText(text string) {
	c.params.SearchText = text
	c.params.Page = 1
}

func (c *Controller) SetCategory(category string) {
	c.params.Category = category
	c.params.Page = 1
}

func (c *Controller) SetPriceRange(min, max float64) {
	c.params.PriceRange = models.PriceRange{Min: min, Max: max}
	c.params.Page = 1
}

func (c *Controller) SetMinRating(rating float64) {
	c.params.MinRating = rating
	c.params.Page = 1
}

// ToggleSkill adds the skill to the required set if absent and removes it if
// present. Applying it twice returns the set to its original state.
func (c *Controller) ToggleSkill(skill string) {
	for i, s := range c.params.RequiredSkills {
		if s == skill {
			c.params.RequiredSkills = append(c.params.RequiredSkills[:i], c.params.RequiredSkills[i+1:]...)
			c.params.Page = 1
			return
		}
	}
	c.params.RequiredSkills = append(c.params.RequiredSkills, skill)
	c.params.Page = 1
}

// SetSortOption changes the ordering. Sorting is not a filter: it does not
// reset the current page and is excluded from HasActiveFilters.
func (c *Controller) SetSortOption(option models.SortOption) {
	c.params.SortOption = option
}

func (c *Controller) SetPage(page int) {
	c.params.Page = page
}

func (c *Controller) SetPageSize(size int) {
	c.params.PageSize = size
	c.params.Page = 1
}

// ResetFilters restores every filter field to its default and goes back to
// page 1. The sort option deliberately survives a reset: clearing filters
// should not reorder what the user is looking at.
func (c *Controller) ResetFilters() {
	c.params.SearchText = ""
	c.params.Category = ""
	c.params.PriceRange = models.PriceRange{Min: models.PriceRangeFloor, Max: models.PriceRangeCeil}
	c.params.MinRating = 0
	c.params.RequiredSkills = nil
	c.params.Page = 1
}

// HasActiveFilters reports whether any filter differs from its default.
// The sort option is not counted.
func (c *Controller) HasActiveFilters() bool {
	p := c.params
	return p.SearchText != "" ||
		p.Category != "" ||
		p.PriceRange.Min > models.PriceRangeFloor ||
		p.PriceRange.Max < models.PriceRangeCeil ||
		p.MinRating > 0 ||
		len(p.RequiredSkills) > 0
}

// Results recomputes the filtered, sorted result set.
func (c *Controller) Results() []models.Freelancer {
	return ComputeResultSet(c.catalog, c.params)
}

// CurrentPage recomputes the result set and slices out the current page.
func (c *Controller) CurrentPage() PageResult {
	return Paginate(c.Results(), c.params.Page, c.params.PageSize)
}
