package service

import (
	"context"

	"crossing/internal/domain/entity"
	"crossing/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when the account does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService exposes account profile data.
type ProfileService interface {
	// FindProfile returns one profile or ErrProfileNotFound.
	FindProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindProfiles returns the profiles that exist among userIDs.
	FindProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error)

	// SetQuietWindow replaces the user's do-not-track window; nil clears it.
	SetQuietWindow(ctx context.Context, userID uuid.UUID, window *entity.QuietWindow) error
}
