package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and CPF are unique across all
// enterprises, so moving a user between tenants requires a new account.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EnterpriseID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type             string    `gorm:"type:varchar(100)"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100)"`
	CPF              string    `gorm:"column:cpf;type:varchar(32);unique;not null"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	RecoveryPassword string    `gorm:"type:varchar(255)"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
