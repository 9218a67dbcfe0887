package repository

import (
	"context"
	"time"

	"crossing/internal/domain/entity"
	"crossing/internal/errors"

	"github.com/google/uuid"
)

// ErrPairNotFound is returned when no aggregate exists for a pair.
var ErrPairNotFound = errors.New("pair aggregate not found")

// PairAggregateRepository stores lifetime pair tallies.
type PairAggregateRepository interface {
	// Increment adds one to the pair's counter, creating it with count 1 and
	// the given category when missing.
	Increment(ctx context.Context, key entity.PairKey, category string, now time.Time) error

	// AddCategory tags the pair, creating it with count 0 when missing.
	AddCategory(ctx context.Context, key entity.PairKey, category string, now time.Time) error

	// FindByKey returns one aggregate or ErrPairNotFound.
	FindByKey(ctx context.Context, key entity.PairKey) (*entity.PairAggregate, error)

	// FindByKeys returns the aggregates that exist among keys.
	FindByKeys(ctx context.Context, keys []entity.PairKey) (map[entity.PairKey]*entity.PairAggregate, error)

	// SetStatus changes the status of an existing pair. Missing pairs are ignored.
	SetStatus(ctx context.Context, key entity.PairKey, status entity.PairStatus, now time.Time) error

	// DeleteByUser removes every pair the user belongs to.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
