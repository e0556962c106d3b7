package listing

import (
	"testing"

	"freelanceai/models"

	"github.com/stretchr/testify/assert"
)

func prices(records []models.Freelancer) []float64 {
	out := make([]float64, 0, len(records))
	for _, f := range records {
		out = append(out, f.Price)
	}
	return out
}

func TestSortRelevantKeepsCatalogOrder(t *testing.T) {
	got := Sort(testCatalog(), models.SortRelevant)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestSortPriceLow(t *testing.T) {
	got := Sort(testCatalog(), models.SortPriceLow)
	assert.Equal(t, []float64{85, 90, 95, 110}, prices(got))
}

func TestSortPriceHigh(t *testing.T) {
	got := Sort(testCatalog(), models.SortPriceHigh)
	assert.Equal(t, []float64{110, 95, 90, 85}, prices(got))
}

func TestSortRatingDescending(t *testing.T) {
	got := Sort(testCatalog(), models.SortRating)
	// Ratings are {4.9, 4.8, 4.7, 4.9}; records 1 and 4 tie at 4.9 and
	// must keep their catalog order.
	assert.Equal(t, []int{1, 4, 2, 3}, ids(got))
}

func TestSortReviewsDescending(t *testing.T) {
	got := Sort(testCatalog(), models.SortReviews)
	// Review counts are {127, 94, 78, 112}.
	assert.Equal(t, []int{1, 4, 2, 3}, ids(got))
}

func TestSortIsStableOnTies(t *testing.T) {
	catalog := []models.Freelancer{
		{ID: 10, Price: 50, Rating: 4.0},
		{ID: 11, Price: 50, Rating: 4.0},
		{ID: 12, Price: 40, Rating: 4.0},
		{ID: 13, Price: 50, Rating: 4.0},
	}

	got := Sort(catalog, models.SortPriceLow)
	assert.Equal(t, []int{12, 10, 11, 13}, ids(got))

	got = Sort(catalog, models.SortRating)
	assert.Equal(t, []int{10, 11, 12, 13}, ids(got))
}

func TestSortUnknownOptionFallsBackToRelevant(t *testing.T) {
	got := Sort(testCatalog(), models.SortOption("trending"))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	_ = Sort(catalog, models.SortPriceLow)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(catalog))
}

func TestComputeResultSetFiltersThenSorts(t *testing.T) {
	params := models.DefaultQueryParams()
	params.PriceRange = models.PriceRange{Min: 90, Max: 110}
	params.SortOption = models.SortPriceLow

	got := ComputeResultSet(testCatalog(), params)
	assert.Equal(t, []float64{90, 95, 110}, prices(got))
}
