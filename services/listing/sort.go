package listing

import (
	"sort"

	"freelanceai/models"
)

// Sort returns a new slice ordered per the given option. The input is never
// mutated, and all orderings are stable: records with equal keys keep their
// relative catalog order, so paging through ties stays deterministic. An
// unknown option falls back to catalog order.
func Sort(records []models.Freelancer, option models.SortOption) []models.Freelancer {
	out := make([]models.Freelancer, len(records))
	copy(out, records)

	switch option {
	case models.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case models.SortReviews:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	default:
		// "relevant" and anything unrecognised keep catalog order.
	}
	return out
}

// ComputeResultSet runs the full pipeline: filter then sort. It is the
// single derivation the browse surface and the controller both rely on.
func ComputeResultSet(catalog []models.Freelancer, params models.QueryParams) []models.Freelancer {
	return Sort(Filter(catalog, params), params.SortOption)
}
