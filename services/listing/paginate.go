package listing

import "freelanceai/models"

// Ellipsis marks a collapsed gap in a page window. Real page numbers are
// always >= 1.
const Ellipsis = 0

// smallCatalogPages is the threshold below which the window shows every
// page with no collapsing.
const smallCatalogPages = 7

// windowRadius is how many pages either side of the current one stay
// visible in a collapsed window.
const windowRadius = 2

// PageResult is one page of an ordered result set plus the metadata the
// navigation controls need.
type PageResult struct {
	Items      []models.Freelancer `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"totalPages"`
	Window     []int               `json:"window"`
}

// Paginate slices the ordered records into the requested page. TotalPages
// is 0 for an empty result set, so callers can tell "no results" from "one
// page". A page outside the valid range yields an empty Items slice, never
// an error.
func Paginate(records []models.Freelancer, page, pageSize int) PageResult {
	res := PageResult{
		Items:    []models.Freelancer{},
		Page:     page,
		PageSize: pageSize,
		Total:    len(records),
	}
	if pageSize <= 0 || len(records) == 0 {
		return res
	}

	res.TotalPages = (len(records) + pageSize - 1) / pageSize
	res.Window = PageWindow(page, res.TotalPages)

	if page < 1 || page > res.TotalPages {
		return res
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	res.Items = records[start:end]
	return res
}

// PageWindow computes the bounded set of page-number controls: always page 1
// and the last page, everything within windowRadius of the current page, and
// a single Ellipsis marker per collapsed gap. Small catalogs show every
// page. The output contains no duplicates and no out-of-range numbers.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}
	if totalPages <= smallCatalogPages {
		window := make([]int, totalPages)
		for i := range window {
			window[i] = i + 1
		}
		return window
	}

	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	var window []int
	inGap := false
	for n := 1; n <= totalPages; n++ {
		keep := n == 1 || n == totalPages || abs(n-current) <= windowRadius
		if keep {
			window = append(window, n)
			inGap = false
			continue
		}
		if !inGap {
			window = append(window, Ellipsis)
			inGap = true
		}
	}
	return window
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
