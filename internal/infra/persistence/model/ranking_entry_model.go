package model

import (
	"time"

	"github.com/google/uuid"
)

// RankingEntryModel mirrors the 'ranking_entries' table. The updated_at column
// holds the epoch id the row was computed in, not a wall-clock time.
type RankingEntryModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OtherUserID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Meet          int       `gorm:"not null"`
	Spots         int       `gorm:"not null"`
	MeetCount     int64     `gorm:"not null"`
	Score         int       `gorm:"not null"`
	Age           int       `gorm:"not null;default:0"`
	Gender        string    `gorm:"type:varchar(16)"`
	Hide          bool      `gorm:"not null;default:false"`
	BlurType      string    `gorm:"type:varchar(16);not null"`
	LastLongitude float64   `gorm:"type:double precision"`
	LastLatitude  float64   `gorm:"type:double precision"`
	LastMatchedAt time.Time
	EpochID       int64 `gorm:"column:updated_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RankingEntryModel) TableName() string {
	return "ranking_entries"
}
