package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelanceai/models"
	"freelanceai/services/listing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubListingService records the parameters Browse was called with.
type stubListingService struct {
	lastParams models.QueryParams
}

func (s *stubListingService) Browse(ctx context.Context, params models.QueryParams) (*listing.BrowseResult, error) {
	s.lastParams = params
	return &listing.BrowseResult{}, nil
}

func (s *stubListingService) GetFreelancer(ctx context.Context, id int) (*models.Freelancer, error) {
	return nil, nil
}

func (s *stubListingService) AllSkills(ctx context.Context) ([]string, error) { return nil, nil }

func (s *stubListingService) Catalog(ctx context.Context) ([]models.Freelancer, error) {
	return nil, nil
}

func browseWith(t *testing.T, body string) models.QueryParams {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubListingService{}
	h := NewListingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/search", h.Browse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return svc.lastParams
}

func TestBrowseViewModeSelectsPageSize(t *testing.T) {
	assert.Equal(t, models.PageSizeGrid, browseWith(t, `{}`).PageSize)
	assert.Equal(t, models.PageSizeList, browseWith(t, `{"view":"list"}`).PageSize)
}

func TestBrowseExplicitPageSizeWinsOverView(t *testing.T) {
	params := browseWith(t, `{"view":"list","pageSize":3}`)
	assert.Equal(t, 3, params.PageSize)
}

func TestBrowseOmittedFiltersKeepDefaults(t *testing.T) {
	params := browseWith(t, `{"searchText":"python"}`)
	assert.Equal(t, "python", params.SearchText)
	assert.Equal(t, models.PriceRange{Min: models.PriceRangeFloor, Max: models.PriceRangeCeil}, params.PriceRange)
	assert.Equal(t, models.SortRelevant, params.SortOption)
}
