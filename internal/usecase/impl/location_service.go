// Package impl contains the implementation of the crossing engine's use cases.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"crossing/config"
	deliverycontext "crossing/internal/delivery/context"
	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/domain/service"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	geoPoints repository.GeoPointRepository
	addresses repository.AddressRepository
	groups    repository.GroupIndex
	profiles  service.ProfileService
	epochs    service.EpochState
	clock     service.Clock
	cfg       *config.CrossingConfig
	loc       *time.Location
	logger    *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	GeoPoints repository.GeoPointRepository
	Addresses repository.AddressRepository
	Groups    repository.GroupIndex
	Profiles  service.ProfileService
	Epochs    service.EpochState
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	cfg := crossingConfig(params.Config)

	return &locationService{
		geoPoints: params.GeoPoints,
		addresses: params.Addresses,
		groups:    params.Groups,
		profiles:  params.Profiles,
		epochs:    params.Epochs,
		clock:     params.Clock,
		cfg:       cfg,
		loc:       cfg.Location(),
		logger:    params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest validates and stores a position, then places it in a group of the
// current epoch. Points inside a privacy zone or quiet window are accepted
// without being stored.
func (srv *locationService) Ingest(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestResult, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	at := entity.Coordinates{Longitude: input.Longitude, Latitude: input.Latitude}
	if err := validateCoordinates(at); err != nil {
		return nil, err
	}

	profile, err := srv.profiles.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	now := srv.clock.Now()

	suppressed, err := srv.isSuppressed(ctx, profile, at, now)
	if err != nil {
		return nil, err
	}
	if suppressed {
		srv.log(ctx).Debug("Location report suppressed", slog.Any("user_id", userID))

		return &usecase.IngestResult{Accepted: true}, nil
	}

	at, err = srv.snapToPrevious(ctx, userID, at, now)
	if err != nil {
		return nil, err
	}

	point := &entity.GeoPoint{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		Coordinates: at,
		RecordedAt:  now,
		ExpiresAt:   now.Add(srv.cfg.GeoPointTTL),
	}
	if err := srv.geoPoints.Create(ctx, point); err != nil {
		return nil, errors.Wrap(err, "failed to store geo point")
	}

	if err := srv.assignGroup(ctx, userID, at); err != nil {
		return nil, err
	}

	return &usecase.IngestResult{Accepted: true}, nil
}

func (srv *locationService) isSuppressed(ctx context.Context, profile *entity.Profile, at entity.Coordinates, now time.Time) (bool, error) {
	if profile.QuietWindow.Contains(now, srv.loc) {
		return true, nil
	}

	zones, err := srv.addresses.FindAddressesByOwner(ctx, profile.UserID, entity.AddressKindPrivacyZone)
	if err != nil {
		return false, errors.Wrap(err, "failed to find privacy zones")
	}

	for _, zone := range zones {
		if zone.Covers(at) {
			return true, nil
		}
	}

	return false, nil
}

// snapToPrevious reuses the coordinates of the user's latest point when the
// new one is within the noise distance.
func (srv *locationService) snapToPrevious(ctx context.Context, userID uuid.UUID, at entity.Coordinates, now time.Time) (entity.Coordinates, error) {
	prev, err := srv.geoPoints.FindLatestByUser(ctx, userID, now)
	if err != nil {
		if errors.Is(err, repository.ErrGeoPointNotFound) {
			return at, nil
		}

		return at, errors.Wrap(err, "failed to find previous geo point")
	}

	if prev.Coordinates.DistanceMeters(at) < srv.cfg.NoiseMeters {
		return prev.Coordinates, nil
	}

	return at, nil
}

func (srv *locationService) assignGroup(ctx context.Context, userID uuid.UUID, at entity.Coordinates) error {
	epoch := srv.epochs.Current()

	groupID, found, err := srv.groups.NearestGroup(ctx, epoch.ID, at, srv.cfg.GroupRadiusKm)
	if err != nil {
		return errors.Wrap(err, "failed to find nearest group")
	}

	if !found {
		groupID = uuid.NewString()
		if err := srv.groups.AddMarker(ctx, epoch.ID, groupID, at); err != nil {
			return errors.Wrap(err, "failed to add group marker")
		}
	}

	if err := srv.groups.UpsertMember(ctx, epoch.ID, groupID, userID, at); err != nil {
		return errors.Wrap(err, "failed to upsert group member")
	}

	return nil
}

func validateCoordinates(c entity.Coordinates) error {
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return domainerrors.NewValidationError("longitude", "must be within [-180, 180]")
	}

	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return domainerrors.NewValidationError("latitude", "must be within [-90, 90]")
	}

	return nil
}

// crossingConfig returns the engine section, falling back to defaults.
func crossingConfig(cfg *config.Config) *config.CrossingConfig {
	if cfg == nil || cfg.Crossing == nil {
		return config.DefaultCrossingConfig()
	}

	return cfg.Crossing
}

func blurConfig(cfg *config.Config) *config.BlurConfig {
	if cfg == nil || cfg.Blur == nil {
		return config.DefaultBlurConfig()
	}

	return cfg.Blur
}
