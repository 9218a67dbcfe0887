package service

import (
	"context"

	"crossing/internal/domain/entity"
	"crossing/internal/errors"
)

// ErrPlaceNotFound is returned when an address cannot be resolved.
var ErrPlaceNotFound = errors.New("place not found")

// Geocoder resolves free-text addresses into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*entity.Place, error)
}
