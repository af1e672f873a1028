package repository

import (
	"context"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository defines the standard operations for solution-category persistence.
type CategoryRepository interface {
	// ExistsByName reports whether the enterprise already has a category
	// with the given name. Uniqueness is scoped per enterprise.
	ExistsByName(ctx context.Context, enterpriseID uuid.UUID, name string) (bool, error)

	// ListByEnterprise retrieves all categories defined by the enterprise.
	ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID) ([]*entity.SolutionCategory, error)

	// Create persists a new category entity.
	Create(ctx context.Context, category *entity.SolutionCategory) error
}
