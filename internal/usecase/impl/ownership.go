// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"solhub/internal/domain/entity"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OwnershipResolver walks the resource ownership chain in a fixed order:
// enterprise, then user, then solution, then the per-operation rule. The
// first broken link decides the outcome, so the same input always produces
// the same error. Every chain violation reads as a not-found; callers can
// never distinguish "exists in another tenant" from "does not exist".
type OwnershipResolver struct {
	enterpriseRepo repository.EnterpriseRepository
	userRepo       repository.UserRepository
	solutionRepo   repository.SolutionRepository
}

// OwnershipResolverParams holds dependencies for OwnershipResolver, injected by Fx.
type OwnershipResolverParams struct {
	fx.In

	EnterpriseRepo repository.EnterpriseRepository
	UserRepo       repository.UserRepository
	SolutionRepo   repository.SolutionRepository
}

// NewOwnershipResolver is the constructor for OwnershipResolver.
func NewOwnershipResolver(params OwnershipResolverParams) *OwnershipResolver {
	return &OwnershipResolver{
		enterpriseRepo: params.EnterpriseRepo,
		userRepo:       params.UserRepo,
		solutionRepo:   params.SolutionRepo,
	}
}

// EnterpriseOwnedBySubject loads the enterprise and verifies the subject is
// the enterprise itself.
func (r *OwnershipResolver) EnterpriseOwnedBySubject(ctx context.Context, enterpriseID, subjectID uuid.UUID) (*entity.Enterprise, error) {
	enterprise, err := r.loadEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	if !enterprise.Owns(subjectID) {
		return nil, domainerrors.ErrEnterpriseNotFound
	}

	return enterprise, nil
}

// UserInEnterprise loads the user and verifies it belongs to the enterprise.
// The enterprise link must already have been resolved by the caller.
func (r *OwnershipResolver) UserInEnterprise(ctx context.Context, enterpriseID, userID uuid.UUID) (*entity.User, error) {
	user, err := r.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.BelongsTo(enterpriseID) {
		return nil, domainerrors.ErrUserNotInEnterprise
	}

	return user, nil
}

// SolutionReadableBySubject verifies the subject may read the enterprise's
// solution collection: either the enterprise itself or one of its members.
func (r *OwnershipResolver) SolutionReadableBySubject(ctx context.Context, enterpriseID, subjectID uuid.UUID) (*entity.Enterprise, error) {
	enterprise, err := r.loadEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	if enterprise.Owns(subjectID) {
		return enterprise, nil
	}

	member, err := r.loadUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !member.BelongsTo(enterpriseID) {
		return nil, domainerrors.ErrUserNotInEnterprise
	}

	return enterprise, nil
}

// SolutionDeletableBySubject walks the full chain for a solution delete and
// returns the solution when every link holds. The enterprise subject may
// delete any solution of its tenant; a user subject only their own.
func (r *OwnershipResolver) SolutionDeletableBySubject(ctx context.Context, enterpriseID, userID, solutionID, subjectID uuid.UUID) (*entity.Solution, error) {
	enterprise, err := r.loadEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}

	user, err := r.UserInEnterprise(ctx, enterpriseID, userID)
	if err != nil {
		return nil, err
	}

	solution, err := r.loadSolution(ctx, solutionID)
	if err != nil {
		return nil, err
	}
	if solution.EnterpriseID != enterpriseID {
		return nil, domainerrors.ErrSolutionNotFound
	}

	// Enterprise subject short-circuits the creator rule.
	if enterprise.Owns(subjectID) {
		return solution, nil
	}

	// A subject that is neither the enterprise nor the named user gets the
	// same answer as a non-owning user; nothing about the chain leaks.
	if subjectID != user.ID {
		return nil, domainerrors.ErrSolutionNotOwnedByUser
	}
	if !solution.CreatedBy(user.ID) {
		return nil, domainerrors.ErrSolutionNotOwnedByUser
	}

	return solution, nil
}

func (r *OwnershipResolver) loadEnterprise(ctx context.Context, enterpriseID uuid.UUID) (*entity.Enterprise, error) {
	enterprise, err := r.enterpriseRepo.FindByID(ctx, enterpriseID)
	if err != nil {
		if errors.Is(err, repository.ErrEnterpriseNotFound) {
			return nil, domainerrors.ErrEnterpriseNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve enterprise")
	}

	return enterprise, nil
}

func (r *OwnershipResolver) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}

	return user, nil
}

func (r *OwnershipResolver) loadSolution(ctx context.Context, solutionID uuid.UUID) (*entity.Solution, error) {
	solution, err := r.solutionRepo.FindByID(ctx, solutionID)
	if err != nil {
		if errors.Is(err, repository.ErrSolutionNotFound) {
			return nil, domainerrors.ErrSolutionNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve solution")
	}

	return solution, nil
}
