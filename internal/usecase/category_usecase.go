package usecase

import (
	"context"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a solution category.
type CreateCategoryInput struct {
	SubjectID    uuid.UUID
	EnterpriseID uuid.UUID
	Name         string
}

// CategoryOutput wraps a single category.
type CategoryOutput struct {
	Category *entity.SolutionCategory
}

// ListCategoriesOutput wraps an enterprise's category list.
type ListCategoriesOutput struct {
	Categories []*entity.SolutionCategory
}

// CategoryUsecase defines the interface for solution-category operations.
// Categories are created by the enterprise and never updated or deleted.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error)
	ListCategories(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*ListCategoriesOutput, error)
}
