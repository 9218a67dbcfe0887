package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type privacyService struct {
	addresses repository.AddressRepository
	profiles  service.ProfileService
	geocoder  service.Geocoder
	clock     service.Clock
	logger    *slog.Logger
}

// PrivacyServiceParams holds dependencies for PrivacyService, injected by Fx.
type PrivacyServiceParams struct {
	fx.In

	Addresses repository.AddressRepository
	Profiles  service.ProfileService
	Geocoder  service.Geocoder
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewPrivacyService is the constructor for privacyService.
func NewPrivacyService(params PrivacyServiceParams) usecase.PrivacyUsecase {
	return &privacyService{
		addresses: params.Addresses,
		profiles:  params.Profiles,
		geocoder:  params.Geocoder,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *privacyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddZone geocodes the address and stores it as a privacy zone.
func (srv *privacyService) AddZone(ctx context.Context, userID uuid.UUID, input *usecase.AddZoneInput) (*entity.Address, error) {
	if input == nil || strings.TrimSpace(input.Address) == "" {
		return nil, domainerrors.NewValidationError("address", "is required")
	}
	if input.RadiusMeters <= 0 {
		return nil, domainerrors.NewValidationError("radius_meters", "must be positive")
	}

	place, err := srv.geocoder.Geocode(ctx, input.Address)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			return nil, domainerrors.ErrPlaceNotFound.WithDetails(input.Address)
		}

		return nil, errors.Wrap(err, "failed to geocode address")
	}

	now := srv.clock.Now()
	zone := &entity.Address{
		ID:           uuid.New(),
		OwnerID:      userID,
		Kind:         entity.AddressKindPrivacyZone,
		Label:        input.Label,
		FullAddress:  input.Address,
		Latitude:     place.Coordinates.Latitude,
		Longitude:    place.Coordinates.Longitude,
		RadiusMeters: input.RadiusMeters,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.addresses.CreateAddress(ctx, zone); err != nil {
		return nil, errors.Wrap(err, "failed to create privacy zone")
	}

	srv.log(ctx).Info("Privacy zone added", slog.Any("user_id", userID), slog.Any("zone_id", zone.ID))

	return zone, nil
}

func (srv *privacyService) ListZones(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	zones, err := srv.addresses.FindAddressesByOwner(ctx, userID, entity.AddressKindPrivacyZone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find privacy zones")
	}

	return zones, nil
}

func (srv *privacyService) DeleteZone(ctx context.Context, userID, zoneID uuid.UUID) error {
	zone, err := srv.addresses.FindAddressByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find privacy zone")
	}

	if zone.OwnerID != userID || zone.Kind != entity.AddressKindPrivacyZone {
		return domainerrors.ErrAddressOwnershipViolation
	}

	if err := srv.addresses.DeleteAddress(ctx, zoneID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete privacy zone")
	}

	return nil
}

// SetQuietWindow stores the daily do-not-track range; empty start and end clear it.
func (srv *privacyService) SetQuietWindow(ctx context.Context, userID uuid.UUID, input *usecase.QuietWindowInput) error {
	window, err := parseQuietWindow(input)
	if err != nil {
		return err
	}

	if err := srv.profiles.SetQuietWindow(ctx, userID, window); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to set quiet window")
	}

	return nil
}

func parseQuietWindow(input *usecase.QuietWindowInput) (*entity.QuietWindow, error) {
	if input == nil || (input.Start == "" && input.End == "") {
		return nil, nil
	}

	start, err := parseMinuteOfDay(input.Start)
	if err != nil {
		return nil, domainerrors.NewValidationError("start", "must be HH:MM")
	}

	end, err := parseMinuteOfDay(input.End)
	if err != nil {
		return nil, domainerrors.NewValidationError("end", "must be HH:MM")
	}

	if start == end {
		return nil, domainerrors.NewValidationError("end", "must differ from start")
	}

	return &entity.QuietWindow{StartMinute: start, EndMinute: end}, nil
}

func parseMinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}

	return t.Hour()*60 + t.Minute(), nil
}
