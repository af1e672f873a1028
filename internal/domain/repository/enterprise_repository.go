// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEnterpriseNotFound is a domain-specific error returned when an enterprise is not found.
var ErrEnterpriseNotFound = errors.New("enterprise not found")

// EnterpriseRepository defines the standard operations for enterprise persistence.
// The application layer depends on this interface, not the concrete implementation.
type EnterpriseRepository interface {
	// FindByID retrieves a single enterprise by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Enterprise, error)

	// FindByEmail retrieves a single enterprise by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Enterprise, error)

	// ExistsByEmailOrTaxID reports whether any enterprise already uses the
	// given email or tax id. Used for the registration uniqueness check.
	ExistsByEmailOrTaxID(ctx context.Context, email, taxID string) (bool, error)

	// Create persists a new enterprise entity.
	Create(ctx context.Context, enterprise *entity.Enterprise) error

	// Update modifies an existing enterprise entity.
	Update(ctx context.Context, enterprise *entity.Enterprise) error
}
