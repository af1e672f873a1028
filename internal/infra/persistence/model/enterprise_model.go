// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EnterpriseModel mirrors the 'enterprises' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type EnterpriseModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	TaxID        string    `gorm:"column:tax_id;type:varchar(32);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Users []UserModel `gorm:"foreignKey:EnterpriseID"`
}

// TableName explicitly sets the table name for GORM.
func (EnterpriseModel) TableName() string {
	return "enterprises"
}
