package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PairAggregateModel mirrors the 'pair_aggregates' table: one row per unordered pair,
// UserLow sorting before UserHigh.
type PairAggregateModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserLow           uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_pair_aggregates_pair,priority:1"`
	UserHigh          uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_pair_aggregates_pair,priority:2;index"`
	MeetMatchingCount int64                       `gorm:"not null;default:0"`
	Categories        datatypes.JSONSlice[string] `gorm:"not null"`
	Status            string                      `gorm:"type:varchar(16);not null;default:active"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PairAggregateModel) TableName() string {
	return "pair_aggregates"
}
