package model

import (
	"time"

	"github.com/google/uuid"
)

// GeoPointModel mirrors the 'geo_points' table. Rows past ExpiresAt are purged by the matching pass.
type GeoPointModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_geo_points_user_time,priority:1"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_geo_points_user_time,priority:2"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (GeoPointModel) TableName() string {
	return "geo_points"
}
