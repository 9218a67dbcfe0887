package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchRecordModel mirrors the 'match_records' table.
type MatchRecordModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index:idx_match_records_pair_time,priority:1"`
	OtherUserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_match_records_pair_time,priority:2;index"`
	Longitude        float64   `gorm:"type:double precision;not null"`
	Latitude         float64   `gorm:"type:double precision;not null"`
	SubjectLongitude float64   `gorm:"type:double precision;not null"`
	SubjectLatitude  float64   `gorm:"type:double precision;not null"`
	EpochID          int64     `gorm:"not null"`
	MatchedAt        time.Time `gorm:"not null;index:idx_match_records_pair_time,priority:3"`
	ExpiresAt        time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MatchRecordModel) TableName() string {
	return "match_records"
}
