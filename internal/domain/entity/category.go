package entity

import (
	"time"

	"github.com/google/uuid"
)

// SolutionCategory is an enterprise-defined label used to organize solutions.
// Name uniqueness is scoped to the owning enterprise.
type SolutionCategory struct {
	ID           uuid.UUID
	EnterpriseID uuid.UUID
	Name         string
	CreatedAt    time.Time
}
