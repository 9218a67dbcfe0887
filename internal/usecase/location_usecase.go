// Package usecase declares the application operations of the crossing engine.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// IngestInput is one position report.
type IngestInput struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// IngestResult is returned for every accepted report, whether it was stored
// or silently dropped by a privacy rule.
type IngestResult struct {
	Accepted bool `json:"accepted"`
}

// LocationUsecase records positions and assigns them to proximity groups.
type LocationUsecase interface {
	Ingest(ctx context.Context, userID uuid.UUID, input *IngestInput) (*IngestResult, error)
}
