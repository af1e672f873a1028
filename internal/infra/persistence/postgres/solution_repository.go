package postgres

import (
	"context"
	"encoding/json"

	"solhub/internal/domain/entity"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/domain/repository"
	"solhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// solutionRepository implements the domain's SolutionRepository interface using GORM.
type solutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository is the constructor for solutionRepository.
func NewSolutionRepository(db *gorm.DB) repository.SolutionRepository {
	return &solutionRepository{db: db}
}

// FindByID retrieves a single solution by its unique ID.
func (repo *solutionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Solution, error) {
	var solutionM model.SolutionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&solutionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSolutionNotFound
		}

		return nil, errors.Wrap(err, "failed to find solution by id")
	}

	return toSolutionDomain(&solutionM)
}

// ListByEnterprise retrieves all solutions under the given enterprise.
func (repo *solutionRepository) ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID) ([]*entity.Solution, error) {
	var solutionMs []model.SolutionModel
	if err := repo.db.WithContext(ctx).
		Where("enterprise_id = ?", enterpriseID).
		Order("created_at DESC").
		Find(&solutionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list solutions by enterprise")
	}

	solutions := make([]*entity.Solution, 0, len(solutionMs))
	for i := range solutionMs {
		solution, err := toSolutionDomain(&solutionMs[i])
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, solution)
	}

	return solutions, nil
}

// Create persists a new solution entity.
func (repo *solutionRepository) Create(ctx context.Context, solution *entity.Solution) error {
	solutionM, err := fromSolutionDomain(solution)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(solutionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEnterpriseNotFound.WrapMessage("owning enterprise does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required solution information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create solution")
	}

	solution.ID = solutionM.ID
	solution.CreatedAt = solutionM.CreatedAt
	solution.UpdatedAt = solutionM.UpdatedAt

	return nil
}

// Update modifies an existing solution entity.
func (repo *solutionRepository) Update(ctx context.Context, solution *entity.Solution) error {
	solutionM, err := fromSolutionDomain(solution)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(solutionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update solution")
	}

	solution.UpdatedAt = solutionM.UpdatedAt

	return nil
}

// Delete removes a solution permanently.
func (repo *solutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SolutionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete solution")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSolutionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSolutionDomain converts a GORM SolutionModel to a domain Solution entity.
// The JSONB file column is decoded into the entity's file descriptors.
func toSolutionDomain(data *model.SolutionModel) (*entity.Solution, error) {
	if data == nil {
		return nil, nil
	}

	var files []entity.SolutionFile
	if len(data.Files) > 0 {
		if err := json.Unmarshal(data.Files, &files); err != nil {
			return nil, errors.Wrap(err, "failed to decode solution files")
		}
	}

	return &entity.Solution{
		ID:           data.ID,
		EnterpriseID: data.EnterpriseID,
		UserID:       data.UserID,
		Title:        data.Title,
		Category:     data.Category,
		Description:  data.Description,
		VideoURL:     data.VideoURL,
		Files:        files,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// fromSolutionDomain converts a domain Solution entity to a GORM SolutionModel.
func fromSolutionDomain(data *entity.Solution) (*model.SolutionModel, error) {
	if data == nil {
		return nil, nil
	}

	files := data.Files
	if files == nil {
		files = []entity.SolutionFile{}
	}
	encoded, err := json.Marshal(files)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode solution files")
	}

	return &model.SolutionModel{
		ID:           data.ID,
		EnterpriseID: data.EnterpriseID,
		UserID:       data.UserID,
		Title:        data.Title,
		Category:     data.Category,
		Description:  data.Description,
		VideoURL:     data.VideoURL,
		Files:        datatypes.JSON(encoded),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}
