package impl

import (
	"context"
	"log/slog"

	deliverycontext "solhub/internal/delivery/context"
	"solhub/internal/domain/repository"
	"solhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// enterpriseService implements the EnterpriseUsecase interface.
type enterpriseService struct {
	enterpriseRepo repository.EnterpriseRepository
	resolver       *OwnershipResolver
	logger         *slog.Logger
}

// EnterpriseServiceParams holds dependencies for enterpriseService, injected by Fx.
type EnterpriseServiceParams struct {
	fx.In

	EnterpriseRepo repository.EnterpriseRepository
	Resolver       *OwnershipResolver
	Logger         *slog.Logger
}

// NewEnterpriseService is the constructor for enterpriseService.
func NewEnterpriseService(params EnterpriseServiceParams) usecase.EnterpriseUsecase {
	return &enterpriseService{
		enterpriseRepo: params.EnterpriseRepo,
		resolver:       params.Resolver,
		logger:         params.Logger,
	}
}

func (srv *enterpriseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetEnterprise retrieves the authenticated enterprise's own record.
func (srv *enterpriseService) GetEnterprise(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*usecase.EnterpriseOutput, error) {
	enterprise, err := srv.resolver.EnterpriseOwnedBySubject(ctx, enterpriseID, subjectID)
	if err != nil {
		return nil, err
	}

	return &usecase.EnterpriseOutput{Enterprise: enterprise}, nil
}

// UpdateEnterprise applies the provided field changes to the enterprise.
func (srv *enterpriseService) UpdateEnterprise(ctx context.Context, input *usecase.UpdateEnterpriseInput) (*usecase.EnterpriseOutput, error) {
	enterprise, err := srv.resolver.EnterpriseOwnedBySubject(ctx, input.EnterpriseID, input.SubjectID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		enterprise.Name = *input.Name
	}
	if input.Email != nil {
		enterprise.Email = *input.Email
	}

	if err := srv.enterpriseRepo.Update(ctx, enterprise); err != nil {
		srv.log(ctx).Error("Failed to update enterprise", slog.Any("enterpriseID", enterprise.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update enterprise")
	}

	return &usecase.EnterpriseOutput{Enterprise: enterprise}, nil
}

// DeactivateEnterprise soft-deletes the enterprise. The record survives so
// an enabled reactivation flow can restore it on a later login.
func (srv *enterpriseService) DeactivateEnterprise(ctx context.Context, subjectID, enterpriseID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating enterprise", slog.Any("enterpriseID", enterpriseID))

	enterprise, err := srv.resolver.EnterpriseOwnedBySubject(ctx, enterpriseID, subjectID)
	if err != nil {
		return err
	}

	enterprise.IsActive = false
	if err := srv.enterpriseRepo.Update(ctx, enterprise); err != nil {
		srv.log(ctx).Error("Failed to deactivate enterprise", slog.Any("enterpriseID", enterpriseID), slog.Any("error", err))

		return errors.Wrap(err, "failed to deactivate enterprise")
	}

	return nil
}
