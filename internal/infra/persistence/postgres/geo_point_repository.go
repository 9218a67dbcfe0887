package postgres

import (
	"context"
	"time"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type geoPointRepository struct {
	db *gorm.DB
}

// NewGeoPointRepository is the constructor for geoPointRepository.
func NewGeoPointRepository(db *gorm.DB) repository.GeoPointRepository {
	return &geoPointRepository{db: db}
}

func (repo *geoPointRepository) Create(ctx context.Context, point *entity.GeoPoint) error {
	if point.ID == uuid.Nil {
		point.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromGeoPointDomain(point)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create geo point")
	}

	return nil
}

func (repo *geoPointRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.GeoPoint, error) {
	var pointM model.GeoPointModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Order("recorded_at DESC").
		First(&pointM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeoPointNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest geo point")
	}

	return toGeoPointDomain(&pointM), nil
}

func (repo *geoPointRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.GeoPointModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired geo points")
	}

	return result.RowsAffected, nil
}

func (repo *geoPointRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.GeoPointModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete geo points by user")
	}

	return nil
}

func toGeoPointDomain(data *model.GeoPointModel) *entity.GeoPoint {
	return &entity.GeoPoint{
		ID:          data.ID,
		UserID:      data.UserID,
		Coordinates: entity.Coordinates{Longitude: data.Longitude, Latitude: data.Latitude},
		RecordedAt:  data.RecordedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}

func fromGeoPointDomain(data *entity.GeoPoint) *model.GeoPointModel {
	return &model.GeoPointModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Longitude:  data.Coordinates.Longitude,
		Latitude:   data.Coordinates.Latitude,
		RecordedAt: data.RecordedAt.UTC(),
		ExpiresAt:  data.ExpiresAt.UTC(),
	}
}
