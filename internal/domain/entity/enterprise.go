// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enterprise is the tenant entity and the top of the ownership hierarchy.
// Every user, solution and category in the system belongs to exactly one enterprise.
type Enterprise struct {
	ID           uuid.UUID // The unique identifier of the enterprise.
	Name         string    // The company's display name.
	TaxID        string    // The company's tax identifier (CNPJ). Globally unique.
	Email        string    // The login email for the enterprise account. Globally unique.
	PasswordHash string    // bcrypt hash of the enterprise's login password.
	IsActive     bool      // False after soft-delete. Inactive enterprises cannot log their users in.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Owns reports whether the given subject id is the enterprise itself.
func (e *Enterprise) Owns(subjectID uuid.UUID) bool {
	return e.ID == subjectID
}
