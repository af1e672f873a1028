package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an employee account scoped to exactly one Enterprise.
// Users are created by their enterprise with a generated password; they never self-register.
type User struct {
	ID           uuid.UUID // The unique identifier of the user.
	EnterpriseID uuid.UUID // The owning enterprise. Required and immutable after creation.
	Type         string    // Free-text role label assigned by the enterprise (e.g. "analyst").
	FirstName    string
	LastName     string
	CPF          string // The user's personal tax id. Globally unique across all enterprises.
	Email        string // The login email. Globally unique across all enterprises.
	PasswordHash string // bcrypt hash of the current password.
	// RecoveryPassword retains the generated plaintext so the enterprise can
	// resend credentials by email. A known weakness carried for feature parity;
	// it is never serialized in API responses.
	RecoveryPassword string
	IsActive         bool // False after soft-delete. Inactive users cannot log in.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BelongsTo reports whether the user is owned by the given enterprise.
func (u *User) BelongsTo(enterpriseID uuid.UUID) bool {
	return u.EnterpriseID == enterpriseID
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
