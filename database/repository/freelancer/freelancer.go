package freelancerRepo

import (
	"context"
	"errors"

	"freelanceai/models"
)

// ErrNotFound is returned when no freelancer matches the requested ID.
var ErrNotFound = errors.New("freelancer not found")

// Repository yields the freelancer catalog. Implementations must return
// records the caller can hold without further synchronization.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Freelancer, error)
	GetByID(ctx context.Context, id int) (*models.Freelancer, error)
}
