package repository

import (
	"context"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// GroupIndex is the ephemeral, epoch-scoped spatial index of groups and
// their members, plus the epoch's pending match events.
type GroupIndex interface {
	// NearestGroup returns the closest group marker within radiusKm.
	NearestGroup(ctx context.Context, epochID int64, at entity.Coordinates, radiusKm float64) (groupID string, found bool, err error)

	// AddMarker registers a new group marker.
	AddMarker(ctx context.Context, epochID int64, groupID string, at entity.Coordinates) error

	// UpsertMember sets the user's position in a group, leaving any group the
	// user joined earlier in the same epoch.
	UpsertMember(ctx context.Context, epochID int64, groupID string, userID uuid.UUID, at entity.Coordinates) error

	// Groups lists every group id of the epoch.
	Groups(ctx context.Context, epochID int64) ([]string, error)

	// Members lists every user of a group.
	Members(ctx context.Context, epochID int64, groupID string) ([]uuid.UUID, error)

	// Neighbors returns members within radiusKm of userID, the user included,
	// nearest first.
	Neighbors(ctx context.Context, epochID int64, groupID string, userID uuid.UUID, radiusKm float64) ([]entity.GroupMember, error)

	// PushEvents appends events to the epoch event list.
	PushEvents(ctx context.Context, epochID int64, events []entity.MatchEvent) error

	// Events reads the whole epoch event list.
	Events(ctx context.Context, epochID int64) ([]entity.MatchEvent, error)

	// ClearEvents deletes the epoch event list.
	ClearEvents(ctx context.Context, epochID int64) error

	// Purge deletes every key of the epoch.
	Purge(ctx context.Context, epochID int64) error
}
