package model

import (
	"time"

	"github.com/google/uuid"
)

// SolutionCategoryModel mirrors the 'solution_categories' table.
// The composite unique index scopes name uniqueness to the enterprise.
type SolutionCategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EnterpriseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_enterprise_name"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_enterprise_name"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SolutionCategoryModel) TableName() string {
	return "solution_categories"
}
