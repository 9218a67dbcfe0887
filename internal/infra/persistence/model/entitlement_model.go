package model

import (
	"time"

	"github.com/google/uuid"
)

// PassModel mirrors the 'passes' table of the payment domain.
type PassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_passes_user_category,priority:1"`
	Category  string    `gorm:"type:varchar(32);not null;index:idx_passes_user_category,priority:2"`
	StartsAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PassModel) TableName() string {
	return "passes"
}

// PurchaseLogModel mirrors the 'purchase_logs' table of the payment domain.
type PurchaseLogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_purchase_logs_buyer_time,priority:1"`
	TargetID    uuid.UUID `gorm:"type:uuid;not null"`
	Category    string    `gorm:"type:varchar(32);not null"`
	PurchasedAt time.Time `gorm:"not null;index:idx_purchase_logs_buyer_time,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseLogModel) TableName() string {
	return "purchase_logs"
}
