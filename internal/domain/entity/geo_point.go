package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is one stored position report of a user.
type GeoPoint struct {
	ID          uuid.UUID   // Unique identifier of the report.
	UserID      uuid.UUID   // The reporting user.
	Coordinates Coordinates // Position, possibly snapped onto the previous report.
	RecordedAt  time.Time   // When the position was reported.
	ExpiresAt   time.Time   // After this instant the point is purged.
}
