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

// enterpriseRepository implements the domain's EnterpriseRepository interface using GORM.
type enterpriseRepository struct {
	db *gorm.DB
}

// NewEnterpriseRepository is the constructor for enterpriseRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewEnterpriseRepository(db *gorm.DB) repository.EnterpriseRepository {
	return &enterpriseRepository{db: db}
}

// FindByID retrieves a single enterprise by its unique ID.
func (repo *enterpriseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enterprise, error) {
	var enterpriseM model.EnterpriseModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&enterpriseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnterpriseNotFound
		}

		return nil, errors.Wrap(err, "failed to find enterprise by id")
	}

	return toEnterpriseDomain(&enterpriseM), nil
}

// FindByEmail retrieves a single enterprise by its login email.
func (repo *enterpriseRepository) FindByEmail(ctx context.Context, email string) (*entity.Enterprise, error) {
	var enterpriseM model.EnterpriseModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&enterpriseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnterpriseNotFound
		}

		return nil, errors.Wrap(err, "failed to find enterprise by email")
	}

	return toEnterpriseDomain(&enterpriseM), nil
}

// ExistsByEmailOrTaxID reports whether any enterprise already uses the given email or tax id.
func (repo *enterpriseRepository) ExistsByEmailOrTaxID(ctx context.Context, email, taxID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.EnterpriseModel{}).
		Where("email = ? OR tax_id = ?", email, taxID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check enterprise uniqueness")
	}

	return count > 0, nil
}

// Create persists a new enterprise entity.
// The generated ID and timestamps are written back onto the entity.
func (repo *enterpriseRepository) Create(ctx context.Context, enterprise *entity.Enterprise) error {
	enterpriseM := fromEnterpriseDomain(enterprise)

	if err := repo.db.WithContext(ctx).Create(enterpriseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("email or tax id already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required enterprise information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create enterprise")
	}

	enterprise.ID = enterpriseM.ID
	enterprise.CreatedAt = enterpriseM.CreatedAt
	enterprise.UpdatedAt = enterpriseM.UpdatedAt

	return nil
}

// Update modifies an existing enterprise entity.
func (repo *enterpriseRepository) Update(ctx context.Context, enterprise *entity.Enterprise) error {
	enterpriseM := fromEnterpriseDomain(enterprise)

	if err := repo.db.WithContext(ctx).Save(enterpriseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("email or tax id already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update enterprise")
	}

	enterprise.UpdatedAt = enterpriseM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toEnterpriseDomain converts a GORM EnterpriseModel to a domain Enterprise entity.
func toEnterpriseDomain(data *model.EnterpriseModel) *entity.Enterprise {
	if data == nil {
		return nil
	}

	return &entity.Enterprise{
		ID:           data.ID,
		Name:         data.Name,
		TaxID:        data.TaxID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromEnterpriseDomain converts a domain Enterprise entity to a GORM EnterpriseModel.
func fromEnterpriseDomain(data *entity.Enterprise) *model.EnterpriseModel {
	if data == nil {
		return nil
	}

	return &model.EnterpriseModel{
		ID:           data.ID,
		Name:         data.Name,
		TaxID:        data.TaxID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
