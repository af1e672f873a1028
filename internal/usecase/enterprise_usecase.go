package usecase

import (
	"context"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateEnterpriseInput defines the mutable enterprise fields.
// Nil pointers leave the current value untouched.
type UpdateEnterpriseInput struct {
	SubjectID    uuid.UUID
	EnterpriseID uuid.UUID
	Name         *string
	Email        *string
}

// EnterpriseOutput wraps a single enterprise.
type EnterpriseOutput struct {
	Enterprise *entity.Enterprise
}

// EnterpriseUsecase defines the interface for enterprise account operations.
// All operations act on the authenticated enterprise itself; the strict
// subject check at the boundary guarantees SubjectID equals EnterpriseID.
type EnterpriseUsecase interface {
	GetEnterprise(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*EnterpriseOutput, error)
	UpdateEnterprise(ctx context.Context, input *UpdateEnterpriseInput) (*EnterpriseOutput, error)
	// DeactivateEnterprise soft-deletes the tenant. Its users keep their
	// records but can no longer log in.
	DeactivateEnterprise(ctx context.Context, subjectID, enterpriseID uuid.UUID) error
}
