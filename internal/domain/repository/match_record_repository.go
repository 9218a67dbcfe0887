package repository

import (
	"context"
	"time"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRecordRepository stores flushed crossing events.
type MatchRecordRepository interface {
	// CreateBatch bulk-inserts records.
	CreateBatch(ctx context.Context, records []*entity.MatchRecord) error

	// FindByUserBetween returns the subject's records in [from, to), ordered by
	// counterpart and then by time.
	FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MatchRecord, error)

	// FindByPairBetween returns records from userID towards otherUserID in [from, to), ordered by time.
	FindByPairBetween(ctx context.Context, userID, otherUserID uuid.UUID, from, to time.Time) ([]*entity.MatchRecord, error)

	// DeleteExpired removes records whose expiry is before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// DeleteByUser removes records involving the user on either side.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
