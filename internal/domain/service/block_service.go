// Package service declares the external collaborators the engine consumes.
package service

import (
	"context"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// BlockService exposes block relationships owned by the account domain.
type BlockService interface {
	// ListAll returns every block relation, used to build a per-pass snapshot.
	ListAll(ctx context.Context) ([]entity.BlockRelation, error)

	// ListByUser returns the relations in which the user is blocker or blocked.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.BlockRelation, error)
}

// HideService exposes hide relationships owned by the account domain.
type HideService interface {
	// HiddenAmong returns the subset of others that userID hides. A single
	// candidate is checked by passing a one-element slice.
	HiddenAmong(ctx context.Context, userID uuid.UUID, others []uuid.UUID) (map[uuid.UUID]bool, error)
}
