package freelancerRepo

import (
	"context"

	"freelanceai/models"
)

// MemoryRepo serves the catalog from memory. The records are read-only
// after construction, so the repo may be shared across goroutines freely.
type MemoryRepo struct {
	records []models.Freelancer
}

// NewMemoryRepo wraps the given records; nil means the built-in seed.
func NewMemoryRepo(records []models.Freelancer) *MemoryRepo {
	if records == nil {
		records = SeedCatalog()
	}
	return &MemoryRepo{records: records}
}

func (r *MemoryRepo) GetAll(ctx context.Context) ([]models.Freelancer, error) {
	out := make([]models.Freelancer, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int) (*models.Freelancer, error) {
	for _, f := range r.records {
		if f.ID == id {
			rec := f
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}
