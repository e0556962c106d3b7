package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	freelancerRepo "freelanceai/database/repository/freelancer"
	"freelanceai/models"
	"freelanceai/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Categories is the fixed browse category list. Categories match loosely
// against skill tags, not a dedicated field.
var Categories = []string{"IA", "Blockchain", "Cryptomonnaie", "Services PME"}

// Service is the browse surface over the freelancer catalog.
type Service interface {
	Browse(ctx context.Context, params models.QueryParams) (*BrowseResult, error)
	GetFreelancer(ctx context.Context, id int) (*models.Freelancer, error)
	AllSkills(ctx context.Context) ([]string, error)
	Catalog(ctx context.Context) ([]models.Freelancer, error)
}

// BrowseResult is one page of results plus the flags the filter UI needs.
type BrowseResult struct {
	PageResult
	HasActiveFilters bool `json:"hasActiveFilters"`
}

// DefaultService computes result sets through the pure pipeline and
// memoizes the filtered+sorted set in redis keyed on the parameter tuple.
// Pages share one cached result set; the page is sliced after the cache.
// Cache trouble is never an error: it degrades to a recompute.
type DefaultService struct {
	Repo        freelancerRepo.Repository
	CacheClient *redis.Client
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

func NewService(repo freelancerRepo.Repository, cache *redis.Client, logger *zap.Logger) *DefaultService {
	return &DefaultService{
		Repo:        repo,
		CacheClient: cache,
		CacheTTL:    5 * time.Minute,
		Logger:      logger,
	}
}

func (s *DefaultService) Browse(ctx context.Context, params models.QueryParams) (*BrowseResult, error) {
	params = normalizeParams(params)

	results, err := s.resultSet(ctx, params)
	if err != nil {
		return nil, err
	}

	ctrl := ResumeController(nil, params)
	return &BrowseResult{
		PageResult:       Paginate(results, params.Page, params.PageSize),
		HasActiveFilters: ctrl.HasActiveFilters(),
	}, nil
}

func (s *DefaultService) GetFreelancer(ctx context.Context, id int) (*models.Freelancer, error) {
	return s.Repo.GetByID(ctx, id)
}

// AllSkills returns the sorted union of every skill in the catalog, for the
// filter panel's skill picker.
func (s *DefaultService) AllSkills(ctx context.Context) ([]string, error) {
	catalog, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var skills []string
	for _, f := range catalog {
		for _, skill := range f.Skills {
			if !seen[skill] {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}
	sort.Strings(skills)
	return skills, nil
}

func (s *DefaultService) Catalog(ctx context.Context) ([]models.Freelancer, error) {
	return s.Repo.GetAll(ctx)
}

// resultSet returns the filtered+sorted records for the given parameters,
// consulting the cache first. Page and PageSize are excluded from the key.
func (s *DefaultService) resultSet(ctx context.Context, params models.QueryParams) ([]models.Freelancer, error) {
	key, err := s.cacheKey(params)
	if err == nil && s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, key).Result(); err == nil && cached != "" {
			var results []models.Freelancer
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results, nil
			}
			// A stale or corrupt entry falls through to re-computation.
		}
	}

	catalog, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	results := ComputeResultSet(catalog, params)

	if s.CacheClient != nil {
		if b, err := json.Marshal(results); err == nil {
			if err := s.CacheClient.Set(ctx, key, b, s.CacheTTL).Err(); err != nil && s.Logger != nil {
				s.Logger.Debug("browse cache write failed", zap.Error(err))
			}
		}
	}
	return results, nil
}

func (s *DefaultService) cacheKey(params models.QueryParams) (string, error) {
	// Paging does not change the result set, only the slice.
	params.Page = 0
	params.PageSize = 0
	b, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", utils.BrowseCachePrefix, b), nil
}
