package repository

import (
	"context"
	"time"

	"crossing/internal/domain/entity"
	"crossing/internal/errors"

	"github.com/google/uuid"
)

// ErrGeoPointNotFound is returned when a user has no stored point.
var ErrGeoPointNotFound = errors.New("geo point not found")

// GeoPointRepository stores position reports.
type GeoPointRepository interface {
	// Create persists a point.
	Create(ctx context.Context, point *entity.GeoPoint) error

	// FindLatestByUser returns the most recent unexpired point of a user.
	FindLatestByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.GeoPoint, error)

	// DeleteExpired removes points whose expiry is before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// DeleteByUser removes every point of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
