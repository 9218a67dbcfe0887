package usecase

import (
	"context"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// HiddenHistoryUsecase serves the day-bucketed trail of one pair.
type HiddenHistoryUsecase interface {
	// Trail returns one bucket per past day, sorted by day_ago ascending.
	Trail(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.HiddenTrailDay, error)
}
