package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PairUsecase reacts to relationship changes owned by other domains.
type PairUsecase interface {
	// TagCategory records that the pair matched under another feature.
	TagCategory(ctx context.Context, a, b uuid.UUID, category string) error

	// OnBlocked suspends the pair and drops their ranking rows about each other.
	OnBlocked(ctx context.Context, blockerID, blockedID uuid.UUID) error

	// OnUnblocked restores the pair once no block remains in either direction.
	OnUnblocked(ctx context.Context, a, b uuid.UUID) error

	// OnAccountDeleted removes every engine row involving the user.
	OnAccountDeleted(ctx context.Context, userID uuid.UUID) error
}
