package repository

import (
	"context"
	"errors"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListByEnterprise retrieves all users owned by the given enterprise.
	ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID) ([]*entity.User, error)

	// ExistsByEmailOrCPF reports whether any user already uses the given
	// email or cpf. Uniqueness is global, not scoped per enterprise.
	ExistsByEmailOrCPF(ctx context.Context, email, cpf string) (bool, error)

	// Create persists a new user entity.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user record permanently (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
