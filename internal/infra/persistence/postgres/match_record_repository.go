package postgres

import (
	"context"
	"time"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const matchRecordBatchSize = 500

type matchRecordRepository struct {
	db *gorm.DB
}

// NewMatchRecordRepository is the constructor for matchRecordRepository.
func NewMatchRecordRepository(db *gorm.DB) repository.MatchRecordRepository {
	return &matchRecordRepository{db: db}
}

func (repo *matchRecordRepository) CreateBatch(ctx context.Context, records []*entity.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]*model.MatchRecordModel, 0, len(records))
	for _, r := range records {
		if r.ID == uuid.Nil {
			r.ID = uuid.Must(uuid.NewV7())
		}
		models = append(models, fromMatchRecordDomain(r))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, matchRecordBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert match records")
	}

	return nil
}

func (repo *matchRecordRepository) FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MatchRecord, error) {
	var recordModels []*model.MatchRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND matched_at >= ? AND matched_at < ?", userID, from.UTC(), to.UTC()).
		Order("other_user_id ASC, matched_at ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find match records by user")
	}

	return toMatchRecordsDomain(recordModels), nil
}

func (repo *matchRecordRepository) FindByPairBetween(ctx context.Context, userID, otherUserID uuid.UUID, from, to time.Time) ([]*entity.MatchRecord, error) {
	var recordModels []*model.MatchRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND other_user_id = ? AND matched_at >= ? AND matched_at < ?", userID, otherUserID, from.UTC(), to.UTC()).
		Order("matched_at ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find match records by pair")
	}

	return toMatchRecordsDomain(recordModels), nil
}

func (repo *matchRecordRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&model.MatchRecordModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired match records")
	}

	return result.RowsAffected, nil
}

func (repo *matchRecordRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? OR other_user_id = ?", userID, userID).
		Delete(&model.MatchRecordModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete match records by user")
	}

	return nil
}

func toMatchRecordsDomain(data []*model.MatchRecordModel) []*entity.MatchRecord {
	records := make([]*entity.MatchRecord, 0, len(data))
	for _, m := range data {
		records = append(records, &entity.MatchRecord{
			ID:                 m.ID,
			UserID:             m.UserID,
			OtherUserID:        m.OtherUserID,
			Coordinates:        entity.Coordinates{Longitude: m.Longitude, Latitude: m.Latitude},
			SubjectCoordinates: entity.Coordinates{Longitude: m.SubjectLongitude, Latitude: m.SubjectLatitude},
			EpochID:            m.EpochID,
			MatchedAt:          m.MatchedAt.UTC(),
			ExpiresAt:          m.ExpiresAt.UTC(),
		})
	}

	return records
}

func fromMatchRecordDomain(data *entity.MatchRecord) *model.MatchRecordModel {
	return &model.MatchRecordModel{
		ID:               data.ID,
		UserID:           data.UserID,
		OtherUserID:      data.OtherUserID,
		Longitude:        data.Coordinates.Longitude,
		Latitude:         data.Coordinates.Latitude,
		SubjectLongitude: data.SubjectCoordinates.Longitude,
		SubjectLatitude:  data.SubjectCoordinates.Latitude,
		EpochID:          data.EpochID,
		MatchedAt:        data.MatchedAt.UTC(),
		ExpiresAt:        data.ExpiresAt.UTC(),
	}
}
