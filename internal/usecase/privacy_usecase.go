package usecase

import (
	"context"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// AddZoneInput describes a privacy zone by free-text address.
type AddZoneInput struct {
	Label        string  `json:"label" validate:"required,max=100"`
	Address      string  `json:"address" validate:"required,max=500"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0,lte=50000"`
}

// QuietWindowInput is a daily do-not-track range in local "HH:MM".
// Both fields empty clears the window.
type QuietWindowInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PrivacyUsecase manages the rules that suppress location reports.
type PrivacyUsecase interface {
	AddZone(ctx context.Context, userID uuid.UUID, input *AddZoneInput) (*entity.Address, error)
	ListZones(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	DeleteZone(ctx context.Context, userID, zoneID uuid.UUID) error
	SetQuietWindow(ctx context.Context, userID uuid.UUID, input *QuietWindowInput) error
}
