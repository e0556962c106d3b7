package listing

import (
	"testing"

	freelancerRepo "freelanceai/database/repository/freelancer"
	"freelanceai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Freelancer {
	return freelancerRepo.SeedCatalog()
}

func defaultParams() models.QueryParams {
	return models.DefaultQueryParams()
}

func ids(records []models.Freelancer) []int {
	out := make([]int, 0, len(records))
	for _, f := range records {
		out = append(out, f.ID)
	}
	return out
}

func TestFilterNoConstraintsIsIdentity(t *testing.T) {
	catalog := testCatalog()
	got := Filter(catalog, defaultParams())
	assert.Equal(t, ids(catalog), ids(got))
}

func TestFilterPriceRange(t *testing.T) {
	params := defaultParams()
	params.PriceRange = models.PriceRange{Min: 90, Max: 110}

	got := Filter(testCatalog(), params)

	// Prices are {95, 110, 85, 90}: 85 falls out, both boundaries stay in.
	assert.Equal(t, []int{1, 2, 4}, ids(got))
}

func TestFilterPriceBoundariesInclusive(t *testing.T) {
	params := defaultParams()
	params.PriceRange = models.PriceRange{Min: 85, Max: 85}

	got := Filter(testCatalog(), params)
	require.Len(t, got, 1)
	assert.Equal(t, 85.0, got[0].Price)
}

func TestFilterContradictoryPriceRangeYieldsEmpty(t *testing.T) {
	params := defaultParams()
	params.PriceRange = models.PriceRange{Min: 150, Max: 50}

	got := Filter(testCatalog(), params)
	assert.Empty(t, got)
}

func TestFilterMinRating(t *testing.T) {
	params := defaultParams()
	params.MinRating = 4.9

	got := Filter(testCatalog(), params)
	assert.Equal(t, []int{1, 4}, ids(got))
}

func TestFilterMinRatingAboveCatalogMax(t *testing.T) {
	params := defaultParams()
	params.MinRating = 5

	got := Filter(testCatalog(), params)
	assert.Empty(t, got)
}

func TestFilterSearchText(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"matches name", "sophie", []int{2}},
		{"matches title", "blockchain", []int{2}},
		{"matches skill", "python", []int{1}},
		{"case insensitive", "PYTHON", []int{1}},
		{"whitespace trimmed", "  python  ", []int{1}},
		{"no match", "golang", nil},
		{"empty is identity", "", []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultParams()
			params.SearchText = tt.search
			got := Filter(testCatalog(), params)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterCategoryMatchesSkillSubstring(t *testing.T) {
	// Categories associate with skill tags by substring, not exact match:
	// "Blockchain" has no identical skill tag anywhere, but "Certified
	// Blockchain..." style tags would match. In the seed catalog only
	// "Services PME"-adjacent tags miss entirely.
	params := defaultParams()
	params.Category = "NFT"

	got := Filter(testCatalog(), params)
	assert.Equal(t, []int{2, 3}, ids(got))
}

func TestFilterCategoryUnsetIsIdentity(t *testing.T) {
	params := defaultParams()
	params.Category = ""
	got := Filter(testCatalog(), params)
	assert.Len(t, got, 4)
}

func TestFilterRequiredSkillsAllSemantics(t *testing.T) {
	catalog := testCatalog()

	params := defaultParams()
	params.RequiredSkills = []string{"DeFi", "NFT"}
	got := Filter(catalog, params)
	// Both records 2 and 3 carry DeFi and NFT.
	assert.Equal(t, []int{2, 3}, ids(got))

	// Adding a skill only record 2 has narrows to record 2: the record
	// must have all requested skills, not any.
	params.RequiredSkills = []string{"DeFi", "NFT", "Solidity"}
	got = Filter(catalog, params)
	assert.Equal(t, []int{2}, ids(got))

	// A skill nobody has empties the result.
	params.RequiredSkills = []string{"DeFi", "Golang"}
	got = Filter(catalog, params)
	assert.Empty(t, got)
}

func TestFilterSingleRequiredSkill(t *testing.T) {
	params := defaultParams()
	params.RequiredSkills = []string{"Python"}

	got := Filter(testCatalog(), params)
	require.Len(t, got, 1)
	assert.Equal(t, "Thomas Laurent", got[0].Name)
}

func TestFilterPredicatesCommute(t *testing.T) {
	// All predicates are independent AND filters, so any application
	// order must produce the same set.
	catalog := testCatalog()
	params := defaultParams()
	params.SearchText = "a"
	params.PriceRange = models.PriceRange{Min: 80, Max: 100}
	params.MinRating = 4.7
	params.RequiredSkills = []string{"DeFi"}

	composed := Filter(catalog, params)

	reordered := filterBySkills(catalog, params.RequiredSkills)
	reordered = filterByText(reordered, params.SearchText)
	reordered = filterByCategory(reordered, params.Category)
	reordered = filterByRating(reordered, params.MinRating)
	reordered = filterByPrice(reordered, params.PriceRange)

	assert.Equal(t, ids(composed), ids(reordered))
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	params := defaultParams()
	params.SearchText = "sophie"

	_ = Filter(catalog, params)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(catalog))
}
