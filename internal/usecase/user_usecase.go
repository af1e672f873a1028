package usecase

import (
	"context"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput defines the mutable user fields.
// Nil pointers leave the current value untouched.
type UpdateUserInput struct {
	SubjectID    uuid.UUID
	EnterpriseID uuid.UUID
	UserID       uuid.UUID
	Type         *string
	FirstName    *string
	LastName     *string
	IsActive     *bool
}

// UserOutput wraps a single user.
type UserOutput struct {
	User *entity.User
}

// ListUsersOutput wraps an enterprise's user roster.
type ListUsersOutput struct {
	Users []*entity.User
}

// UserUsecase defines the interface for user management operations.
// Every operation is performed by an enterprise on its own users; ownership
// of the target user is re-checked against the subject on each call.
type UserUsecase interface {
	ListUsers(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*ListUsersOutput, error)
	GetUser(ctx context.Context, subjectID, enterpriseID, userID uuid.UUID) (*UserOutput, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error)
	// DeleteUser removes the user record permanently. Soft delete is done
	// through UpdateUser with IsActive=false.
	DeleteUser(ctx context.Context, subjectID, enterpriseID, userID uuid.UUID) error
}
