package repository

import (
	"context"
	"errors"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSolutionNotFound is a domain-specific error returned when a solution is not found.
var ErrSolutionNotFound = errors.New("solution not found")

// SolutionRepository defines the standard operations for solution persistence.
type SolutionRepository interface {
	// FindByID retrieves a single solution by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Solution, error)

	// ListByEnterprise retrieves all solutions under the given enterprise.
	ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID) ([]*entity.Solution, error)

	// Create persists a new solution entity.
	Create(ctx context.Context, solution *entity.Solution) error

	// Update modifies an existing solution entity.
	Update(ctx context.Context, solution *entity.Solution) error

	// Delete removes a solution permanently. A second delete of the same id
	// returns ErrSolutionNotFound; double deletes surface to the caller.
	Delete(ctx context.Context, id uuid.UUID) error
}
