package entity

import (
	"time"

	"github.com/google/uuid"
)

// SolutionFile describes one attachment of a solution. The URL points at the
// object storage location; Name and Extension are what the author uploaded.
type SolutionFile struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Extension string `json:"extension"`
}

// Solution is a knowledge-base article created by a User inside an Enterprise.
// Invariant: the creating user must belong to the solution's enterprise.
type Solution struct {
	ID           uuid.UUID // The unique identifier of the solution.
	EnterpriseID uuid.UUID // The enterprise this solution belongs to.
	UserID       uuid.UUID // The creating user. Only this user may update the solution.
	Title        string
	Category     string // Free-text category name. References a SolutionCategory by convention, not by key.
	Description  string
	VideoURL     string         // Optional link to an explanatory video.
	Files        []SolutionFile // Ordered attachment descriptors.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreatedBy reports whether the given user created this solution.
func (s *Solution) CreatedBy(userID uuid.UUID) bool {
	return s.UserID == userID
}
