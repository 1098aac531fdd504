package models

import (
	"time"

	"relnotes/internal/shared/constants"
)

// UserModel represents the database persistence model for editor accounts
type UserModel struct {
	ID           uint      `gorm:"primarykey"`
	Username     string    `gorm:"uniqueIndex;not null;size:150"`
	PasswordHash string    `gorm:"not null;size:255"`
	IsStaff      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
