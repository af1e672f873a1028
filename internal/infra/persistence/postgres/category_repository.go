package postgres

import (
	"context"

	"solhub/internal/domain/entity"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/domain/repository"
	"solhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the domain's CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ExistsByName reports whether the enterprise already has a category with the given name.
func (repo *categoryRepository) ExistsByName(ctx context.Context, enterpriseID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SolutionCategoryModel{}).
		Where("enterprise_id = ? AND name = ?", enterpriseID, name).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check category uniqueness")
	}

	return count > 0, nil
}

// ListByEnterprise retrieves all categories defined by the enterprise.
func (repo *categoryRepository) ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID) ([]*entity.SolutionCategory, error) {
	var categoryMs []model.SolutionCategoryModel
	if err := repo.db.WithContext(ctx).
		Where("enterprise_id = ?", enterpriseID).
		Order("name").
		Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories by enterprise")
	}

	categories := make([]*entity.SolutionCategory, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// Create persists a new category entity. The unique index on
// (enterprise_id, name) backs the per-enterprise name uniqueness rule.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.SolutionCategory) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("category name already exists for this enterprise")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEnterpriseNotFound.WrapMessage("owning enterprise does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM SolutionCategoryModel to a domain entity.
func toCategoryDomain(data *model.SolutionCategoryModel) *entity.SolutionCategory {
	if data == nil {
		return nil
	}

	return &entity.SolutionCategory{
		ID:           data.ID,
		EnterpriseID: data.EnterpriseID,
		Name:         data.Name,
		CreatedAt:    data.CreatedAt,
	}
}

// fromCategoryDomain converts a domain entity to a GORM SolutionCategoryModel.
func fromCategoryDomain(data *entity.SolutionCategory) *model.SolutionCategoryModel {
	if data == nil {
		return nil
	}

	return &model.SolutionCategoryModel{
		ID:           data.ID,
		EnterpriseID: data.EnterpriseID,
		Name:         data.Name,
		CreatedAt:    data.CreatedAt,
	}
}
