package repository

import (
	"context"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// RankingRepository stores epoch-stamped ranking rows.
type RankingRepository interface {
	// FindEpoch returns the epoch id the user's rows were computed in.
	// found is false when the user has no rows.
	FindEpoch(ctx context.Context, userID uuid.UUID) (epochID int64, found bool, err error)

	// Replace deletes the user's rows and stores entries in their place.
	Replace(ctx context.Context, userID uuid.UUID, entries []*entity.RankingEntry) error

	// List returns one page of non-hidden rows matching the filter.
	List(ctx context.Context, userID uuid.UUID, filter entity.RankingFilter) ([]*entity.RankingEntry, error)

	// DeletePair removes the rows of a and b about each other.
	DeletePair(ctx context.Context, a, b uuid.UUID) error

	// DeleteByUser removes rows owned by or about the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
