package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SolutionModel mirrors the 'solutions' table. File descriptors are stored as
// a JSONB array; the objects themselves live in the storage bucket.
type SolutionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EnterpriseID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Category     string    `gorm:"type:varchar(100)"`
	Description  string    `gorm:"type:text"`
	VideoURL     string    `gorm:"column:video_url;type:varchar(2048)"`
	Files        datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SolutionModel) TableName() string {
	return "solutions"
}
