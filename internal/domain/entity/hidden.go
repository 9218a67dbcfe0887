package entity

import (
	"time"

	"github.com/google/uuid"
)

// HiddenSnapshot caches the meet/spots metric of one pair for one past day.
type HiddenSnapshot struct {
	UserID      uuid.UUID
	OtherUserID uuid.UUID
	DayAgo      int       // 1 is yesterday, up to the configured number of days.
	Date        time.Time // Local midnight that starts the bucket.
	Meet        int
	Spots       int
}

// TrailPoint is one crossing position in a hidden trail.
type TrailPoint struct {
	Coordinates Coordinates `json:"coordinates"`
	MatchedAt   time.Time   `json:"matched_at"`
}

// HiddenTrailDay is one bucket of the hidden trail view.
type HiddenTrailDay struct {
	DayAgo int          `json:"day_ago"`
	Date   time.Time    `json:"date"`
	Meet   int          `json:"meet"`
	Spots  int          `json:"spots"`
	Trail  []TrailPoint `json:"trail"`
}
