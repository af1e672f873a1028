package impl

import (
	"context"
	"log/slog"

	deliverycontext "solhub/internal/delivery/context"
	"solhub/internal/domain/entity"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/domain/repository"
	"solhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	resolver     *OwnershipResolver
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Resolver     *OwnershipResolver
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		resolver:     params.Resolver,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory creates a category for the enterprise. The name must be
// unique within the enterprise only; two tenants may both have "Networking".
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*usecase.CategoryOutput, error) {
	srv.log(ctx).Info("Creating category", slog.Any("enterpriseID", input.EnterpriseID), slog.String("name", input.Name))

	if _, err := srv.resolver.EnterpriseOwnedBySubject(ctx, input.EnterpriseID, input.SubjectID); err != nil {
		return nil, err
	}

	newCategory := &entity.SolutionCategory{
		EnterpriseID: input.EnterpriseID,
		Name:         input.Name,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		exists, err := categoryRepo.ExistsByName(ctx, input.EnterpriseID, input.Name)
		if err != nil {
			return errors.Wrap(err, "failed to check category uniqueness")
		}
		if exists {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("category name already exists for this enterprise")
		}

		return categoryRepo.Create(ctx, newCategory)
	})
	if err != nil {
		srv.log(ctx).Warn("Category creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return &usecase.CategoryOutput{Category: newCategory}, nil
}

// ListCategories retrieves all categories of the enterprise.
func (srv *categoryService) ListCategories(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*usecase.ListCategoriesOutput, error) {
	if _, err := srv.resolver.EnterpriseOwnedBySubject(ctx, enterpriseID, subjectID); err != nil {
		return nil, err
	}

	categories, err := srv.categoryRepo.ListByEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.ListCategoriesOutput{Categories: categories}, nil
}
