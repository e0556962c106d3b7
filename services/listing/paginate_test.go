package listing

import (
	"fmt"
	"testing"

	"freelanceai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedCatalog(n int) []models.Freelancer {
	out := make([]models.Freelancer, n)
	for i := range out {
		out[i] = models.Freelancer{ID: i + 1}
	}
	return out
}

func TestPaginateBasicSlice(t *testing.T) {
	res := Paginate(numberedCatalog(4), 2, 2)

	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []int{3, 4}, ids(res.Items))
}

func TestPaginatePartialLastPage(t *testing.T) {
	res := Paginate(numberedCatalog(7), 2, 6)

	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []int{7}, ids(res.Items))
}

func TestPaginateEmptyResultSet(t *testing.T) {
	res := Paginate(nil, 1, 6)

	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Items)
	assert.Nil(t, res.Window)
}

func TestPaginateOutOfRangePage(t *testing.T) {
	for _, page := range []int{-1, 0, 3, 100} {
		t.Run(fmt.Sprintf("page_%d", page), func(t *testing.T) {
			res := Paginate(numberedCatalog(4), page, 2)
			assert.Empty(t, res.Items)
			assert.Equal(t, 2, res.TotalPages)
		})
	}
}

func TestPaginateZeroPageSize(t *testing.T) {
	res := Paginate(numberedCatalog(4), 1, 0)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
}

func TestPaginateCompleteness(t *testing.T) {
	// Concatenating every page reconstructs the result set exactly: no
	// gaps, no duplicates, no reordering.
	for _, tc := range []struct{ n, pageSize int }{
		{4, 2}, {7, 6}, {8, 8}, {25, 6}, {100, 8},
	} {
		records := numberedCatalog(tc.n)
		first := Paginate(records, 1, tc.pageSize)

		var rebuilt []models.Freelancer
		for page := 1; page <= first.TotalPages; page++ {
			rebuilt = append(rebuilt, Paginate(records, page, tc.pageSize).Items...)
		}
		require.Equal(t, ids(records), ids(rebuilt), "n=%d pageSize=%d", tc.n, tc.pageSize)
	}
}

func TestPageWindowSmallCatalogShowsAllPages(t *testing.T) {
	for total := 1; total <= 7; total++ {
		window := PageWindow(1, total)
		require.Len(t, window, total)
		for i, n := range window {
			assert.Equal(t, i+1, n)
		}
	}
}

func TestPageWindowZeroPages(t *testing.T) {
	assert.Nil(t, PageWindow(1, 0))
}

func TestPageWindowCollapsesGaps(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"middle", 6, 42, []int{1, Ellipsis, 4, 5, 6, 7, 8, Ellipsis, 42}},
		{"near start", 2, 20, []int{1, 2, 3, 4, Ellipsis, 20}},
		{"at start", 1, 20, []int{1, 2, 3, Ellipsis, 20}},
		{"near end", 19, 20, []int{1, Ellipsis, 17, 18, 19, 20}},
		{"at end", 20, 20, []int{1, Ellipsis, 18, 19, 20}},
		{"eight pages", 4, 8, []int{1, 2, 3, 4, 5, 6, Ellipsis, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total))
		})
	}
}

func TestPageWindowClampsCurrentPage(t *testing.T) {
	assert.Equal(t, PageWindow(1, 20), PageWindow(-5, 20))
	assert.Equal(t, PageWindow(20, 20), PageWindow(99, 20))
}

func TestPageWindowNoDuplicatesNoOutOfRange(t *testing.T) {
	for total := 8; total <= 60; total += 13 {
		for current := 1; current <= total; current++ {
			window := PageWindow(current, total)
			seen := make(map[int]bool)
			for _, n := range window {
				if n == Ellipsis {
					continue
				}
				require.False(t, seen[n], "duplicate page %d (current=%d total=%d)", n, current, total)
				require.GreaterOrEqual(t, n, 1)
				require.LessOrEqual(t, n, total)
				seen[n] = true
			}
			// The current page itself is always visible.
			require.True(t, seen[current])
		}
	}
}
