package model

import (
	"time"

	"github.com/google/uuid"
)

// HiddenSnapshotModel mirrors the 'hidden_snapshots' table.
type HiddenSnapshotModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OtherUserID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	DayAgo      int       `gorm:"primaryKey;autoIncrement:false"`
	Date        time.Time `gorm:"not null"`
	Meet        int       `gorm:"not null"`
	Spots       int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HiddenSnapshotModel) TableName() string {
	return "hidden_snapshots"
}
