package entity

import (
	"time"

	"github.com/google/uuid"
)

// RankingSort names the metric a ranking list is ordered by.
type RankingSort string

const (
	RankingSortMeet      RankingSort = "meet"
	RankingSortMeetCount RankingSort = "meetCount"
	RankingSortSpots     RankingSort = "spots"
	RankingSortScore     RankingSort = "score"
)

// IsValid checks if the sort key is supported.
func (s RankingSort) IsValid() bool {
	switch s {
	case RankingSortMeet, RankingSortMeetCount, RankingSortSpots, RankingSortScore:
		return true
	default:
		return false
	}
}

// RankingEntry is the cached ranking row of one counterpart for one user.
type RankingEntry struct {
	UserID          uuid.UUID
	OtherUserID     uuid.UUID
	Meet            int         // Crossings within the ranking window.
	Spots           int         // Distinct encounter sessions within the window.
	MeetCount       int64       // Lifetime pair counter.
	Score           int         // floor((meet*0.3 + spots*0.7) * 10)
	Age             int         // Counterpart age at computation time.
	Gender          string      // Counterpart gender at computation time.
	Hide            bool        // Subject hides the counterpart.
	BlurType        BlurType    // Classification of the latest crossing.
	LastCoordinates Coordinates // Counterpart position at the latest crossing.
	LastMatchedAt   time.Time
	UpdatedAt       int64 // Epoch id the row was computed in.
}

// RankingFilter selects and orders a page of ranking rows.
type RankingFilter struct {
	Sort     RankingSort
	Page     int
	PageSize int
	MinAge   *int
	MaxAge   *int
	Gender   string
}

// Offset returns the row offset of the requested page.
func (f RankingFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}
