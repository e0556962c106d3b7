package listing

import (
	"testing"

	"freelanceai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaults(t *testing.T) {
	c := NewController(testCatalog())

	assert.False(t, c.HasActiveFilters())
	assert.Equal(t, models.SortRelevant, c.Params().SortOption)
	assert.Equal(t, 1, c.Params().Page)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(c.Results()))
}

func TestControllerFilterMutatorsResetPage(t *testing.T) {
	c := NewController(testCatalog())

	mutations := []struct {
		name   string
		mutate func()
	}{
		{"search", func() { c.SetSearchText("ml") }},
		{"category", func() { c.SetCategory("Blockchain") }},
		{"price", func() { c.SetPriceRange(50, 150) }},
		{"rating", func() { c.SetMinRating(4) }},
		{"skill", func() { c.ToggleSkill("Python") }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			c.SetPage(3)
			m.mutate()
			assert.Equal(t, 1, c.Params().Page)
		})
	}
}

func TestControllerSortDoesNotResetPage(t *testing.T) {
	c := NewController(testCatalog())
	c.SetPage(2)
	c.SetSortOption(models.SortPriceHigh)
	assert.Equal(t, 2, c.Params().Page)
}

func TestControllerToggleSkillInvolution(t *testing.T) {
	c := NewController(testCatalog())

	c.ToggleSkill("Python")
	assert.Equal(t, []string{"Python"}, c.Params().RequiredSkills)

	c.ToggleSkill("DeFi")
	assert.Equal(t, []string{"Python", "DeFi"}, c.Params().RequiredSkills)

	// Toggling an existing skill removes it; twice in a row is a no-op
	// pair.
	c.ToggleSkill("Python")
	assert.Equal(t, []string{"DeFi"}, c.Params().RequiredSkills)
	c.ToggleSkill("Python")
	c.ToggleSkill("Python")
	assert.Equal(t, []string{"DeFi"}, c.Params().RequiredSkills)
}

func TestControllerHasActiveFilters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Controller)
	}{
		{"search", func(c *Controller) { c.SetSearchText("AI") }},
		{"category", func(c *Controller) { c.SetCategory("IA") }},
		{"price narrowed low", func(c *Controller) { c.SetPriceRange(10, models.PriceRangeCeil) }},
		{"price narrowed high", func(c *Controller) { c.SetPriceRange(models.PriceRangeFloor, 150) }},
		{"rating", func(c *Controller) { c.SetMinRating(3) }},
		{"skill", func(c *Controller) { c.ToggleSkill("NFT") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(testCatalog())
			require.False(t, c.HasActiveFilters())
			tc.mutate(c)
			assert.True(t, c.HasActiveFilters())
		})
	}

	t.Run("sort is not a filter", func(t *testing.T) {
		c := NewController(testCatalog())
		c.SetSortOption(models.SortReviews)
		assert.False(t, c.HasActiveFilters())
	})
}

func TestControllerResetFilters(t *testing.T) {
	c := NewController(testCatalog())
	c.SetSearchText("AI")
	c.SetMinRating(4)
	c.ToggleSkill("Python")
	c.SetSortOption(models.SortPriceLow)
	c.SetPage(2)
	require.True(t, c.HasActiveFilters())

	c.ResetFilters()

	assert.False(t, c.HasActiveFilters())
	assert.Equal(t, 1, c.Params().Page)
	// The sort option survives a reset: clearing filters must not
	// reorder the listing under the user.
	assert.Equal(t, models.SortPriceLow, c.Params().SortOption)
	// The result set is the full catalog again, still in the current
	// sort order.
	assert.Equal(t, []float64{85, 90, 95, 110}, prices(c.Results()))
}

func TestControllerResetFiltersIdempotent(t *testing.T) {
	c := NewController(testCatalog())
	c.SetSearchText("AI")
	c.SetPriceRange(20, 60)

	c.ResetFilters()
	once := c.Params()
	c.ResetFilters()
	assert.Equal(t, once, c.Params())
}

func TestControllerCurrentPage(t *testing.T) {
	c := NewController(testCatalog())
	c.SetPageSize(2)
	c.SetPage(2)

	page := c.CurrentPage()
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []int{3, 4}, ids(page.Items))
}

func TestControllerPageChangeLeavesFiltersAlone(t *testing.T) {
	c := NewController(testCatalog())
	c.SetSearchText("blockchain")
	before := c.Params()

	c.SetPage(2)

	after := c.Params()
	assert.Equal(t, before.SearchText, after.SearchText)
	assert.Equal(t, before.PriceRange, after.PriceRange)
	assert.Equal(t, before.RequiredSkills, after.RequiredSkills)
	assert.Equal(t, 2, after.Page)
}

func TestResumeControllerSanitizesParams(t *testing.T) {
	params := models.DefaultQueryParams()
	params.Page = 0
	params.PageSize = -3

	c := ResumeController(testCatalog(), params)
	assert.Equal(t, 1, c.Params().Page)
	assert.Equal(t, models.PageSizeGrid, c.Params().PageSize)
}

func TestResumeControllerFromZeroValueParams(t *testing.T) {
	c := ResumeController(testCatalog(), models.QueryParams{})

	assert.Equal(t, models.DefaultQueryParams(), c.Params())
	assert.False(t, c.HasActiveFilters())
	assert.Len(t, c.CurrentPage().Items, 4)
}

func TestResumeControllerKeepsExplicitPriceRange(t *testing.T) {
	params := models.DefaultQueryParams()
	params.PriceRange = models.PriceRange{Min: 80, Max: 100}

	c := ResumeController(testCatalog(), params)
	assert.Equal(t, models.PriceRange{Min: 80, Max: 100}, c.Params().PriceRange)
	assert.True(t, c.HasActiveFilters())
}
