package usecase

import (
	"context"
	"time"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxRankingPage bounds the page number so the row offset cannot overflow.
const MaxRankingPage = 10000

// RankingQuery selects a page of the ranked counterpart list.
type RankingQuery struct {
	Sort   string `query:"sort" validate:"omitempty,oneof=meet meetCount spots score"`
	Page   int    `query:"page" validate:"omitempty,min=1,max=10000"`
	MinAge *int   `query:"minAge" validate:"omitempty,min=0,max=150"`
	MaxAge *int   `query:"maxAge" validate:"omitempty,min=0,max=150"`
	Gender string `query:"gender" validate:"omitempty,max=16"`
}

// CrossingView is one ranked counterpart as shown to the subject.
// Coordinates is nil when the row is blurred.
type CrossingView struct {
	OtherUserID   uuid.UUID           `json:"other_user_id"`
	Meet          int                 `json:"meet"`
	Spots         int                 `json:"spots"`
	MeetCount     int64               `json:"meet_count"`
	Score         int                 `json:"score"`
	Age           int                 `json:"age"`
	Gender        string              `json:"gender"`
	BlurType      entity.BlurType     `json:"blur_type"`
	Blurred       bool                `json:"blurred"`
	Coordinates   *entity.Coordinates `json:"coordinates,omitempty"`
	LastMatchedAt time.Time           `json:"last_matched_at"`
}

// RankingPage is one page of the ranked list.
type RankingPage struct {
	Items    []*CrossingView `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Sort     string          `json:"sort"`
	EpochID  int64           `json:"epoch_id"`
}

// RankingUsecase serves the epoch-cached ranking.
type RankingUsecase interface {
	List(ctx context.Context, userID uuid.UUID, query *RankingQuery) (*RankingPage, error)
}
