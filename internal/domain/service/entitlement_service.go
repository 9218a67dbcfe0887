package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntitlementService exposes payment state that can lift a blur.
type EntitlementService interface {
	// ActivePassCategories returns the categories in which the user holds an
	// unlimited-visibility pass at the given instant.
	ActivePassCategories(ctx context.Context, userID uuid.UUID, at time.Time) (map[string]bool, error)

	// PurchasedSince returns, per counterpart, the categories of single-item
	// purchases the user made for that counterpart at or after since.
	PurchasedSince(ctx context.Context, userID uuid.UUID, others []uuid.UUID, since time.Time) (map[uuid.UUID]map[string]bool, error)
}
