package repository

import (
	"context"

	"crossing/internal/domain/entity"
	"crossing/internal/errors"

	"github.com/google/uuid"
)

// ErrHiddenSnapshotNotFound is returned when a day bucket is not cached.
var ErrHiddenSnapshotNotFound = errors.New("hidden snapshot not found")

// HiddenSnapshotRepository stores day-bucketed pair metrics.
type HiddenSnapshotRepository interface {
	// FindByPairAndDay returns one bucket or ErrHiddenSnapshotNotFound.
	FindByPairAndDay(ctx context.Context, userID, otherUserID uuid.UUID, dayAgo int) (*entity.HiddenSnapshot, error)

	// FindByPair returns every cached bucket ordered by day_ago.
	FindByPair(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.HiddenSnapshot, error)

	// ReplaceForPair deletes the pair's buckets and stores snapshots instead.
	ReplaceForPair(ctx context.Context, userID, otherUserID uuid.UUID, snapshots []*entity.HiddenSnapshot) error

	// DeleteByUser removes buckets owned by or about the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
