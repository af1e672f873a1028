// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterEnterpriseInput defines the data required to register a new enterprise.
type RegisterEnterpriseInput struct {
	Name     string
	TaxID    string
	Email    string
	Password string
}

// LoginInput defines the data required for an enterprise or user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// CreateUserInput defines the data required for an enterprise to create a user.
// The password is generated server-side and emailed to the new user.
type CreateUserInput struct {
	SubjectID    uuid.UUID // authenticated enterprise acting on the route
	EnterpriseID uuid.UUID
	Type         string
	FirstName    string
	LastName     string
	CPF          string
	Email        string
}

// ResendCredentialsInput identifies the user whose credentials are re-sent.
type ResendCredentialsInput struct {
	SubjectID    uuid.UUID
	EnterpriseID uuid.UUID
	UserID       uuid.UUID
}

// --- Output DTOs ---

// RegisterEnterpriseOutput returns the newly created enterprise.
type RegisterEnterpriseOutput struct {
	Enterprise *entity.Enterprise
}

// EnterpriseLoginOutput returns the generated tokens after a successful enterprise login.
// ExpiresIn is the access token lifetime in seconds.
type EnterpriseLoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	Enterprise   *entity.Enterprise
}

// UserLoginOutput returns the generated tokens after a successful user login.
// ExpiresIn is the access token lifetime in seconds.
type UserLoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         *entity.User
}

// CreateUserOutput returns the newly created user.
type CreateUserOutput struct {
	User *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterEnterprise(ctx context.Context, input *RegisterEnterpriseInput) (*RegisterEnterpriseOutput, error)
	LoginEnterprise(ctx context.Context, input *LoginInput) (*EnterpriseLoginOutput, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error)
	LoginUser(ctx context.Context, input *LoginInput) (*UserLoginOutput, error)
	ResendCredentials(ctx context.Context, input *ResendCredentialsInput) error
}
