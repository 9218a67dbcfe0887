package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table owned by the account domain.
// The engine reads it for age, gender and the do-not-track window.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName      string    `gorm:"type:varchar(100)"`
	Age              int       `gorm:"not null;default:0"`
	Gender           string    `gorm:"type:varchar(16);index"`
	QuietStartMinute *int      // minutes since local midnight, nil when unset
	QuietEndMinute   *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
