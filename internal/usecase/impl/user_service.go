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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	resolver *OwnershipResolver
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Resolver *OwnershipResolver
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		resolver: params.Resolver,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves the enterprise's complete user roster.
func (srv *userService) ListUsers(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*usecase.ListUsersOutput, error) {
	if _, err := srv.resolver.EnterpriseOwnedBySubject(ctx, enterpriseID, subjectID); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListByEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{Users: users}, nil
}

// GetUser retrieves one user after re-checking the ownership chain.
func (srv *userService) GetUser(ctx context.Context, subjectID, enterpriseID, userID uuid.UUID) (*usecase.UserOutput, error) {
	if _, err := srv.resolver.EnterpriseOwnedBySubject(ctx, enterpriseID, subjectID); err != nil {
		return nil, err
	}

	user, err := srv.resolver.UserInEnterprise(ctx, enterpriseID, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.UserOutput{User: user}, nil
}

// UpdateUser applies the provided field changes to the user. Setting
// IsActive=false is the soft-delete path.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	if _, err := srv.resolver.EnterpriseOwnedBySubject(ctx, input.EnterpriseID, input.SubjectID); err != nil {
		return nil, err
	}

	user, err := srv.resolver.UserInEnterprise(ctx, input.EnterpriseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		user.Type = *input.Type
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	return &usecase.UserOutput{User: user}, nil
}

// DeleteUser removes the user record permanently.
func (srv *userService) DeleteUser(ctx context.Context, subjectID, enterpriseID, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("enterpriseID", enterpriseID), slog.Any("userID", userID))

	if _, err := srv.resolver.EnterpriseOwnedBySubject(ctx, enterpriseID, subjectID); err != nil {
		return err
	}

	if _, err := srv.resolver.UserInEnterprise(ctx, enterpriseID, userID); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
