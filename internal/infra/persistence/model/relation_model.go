package model

import (
	"time"

	"github.com/google/uuid"
)

// UserBlockModel mirrors the 'user_blocks' table owned by the account domain.
type UserBlockModel struct {
	BlockerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BlockedID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserBlockModel) TableName() string {
	return "user_blocks"
}

// UserHideModel mirrors the 'user_hides' table owned by the account domain.
type UserHideModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	HiddenUserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserHideModel) TableName() string {
	return "user_hides"
}
