package postgres

import (
	"context"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type hiddenSnapshotRepository struct {
	db *gorm.DB
}

// NewHiddenSnapshotRepository is the constructor for hiddenSnapshotRepository.
func NewHiddenSnapshotRepository(db *gorm.DB) repository.HiddenSnapshotRepository {
	return &hiddenSnapshotRepository{db: db}
}

func (repo *hiddenSnapshotRepository) FindByPairAndDay(ctx context.Context, userID, otherUserID uuid.UUID, dayAgo int) (*entity.HiddenSnapshot, error) {
	var snapshotM model.HiddenSnapshotModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND other_user_id = ? AND day_ago = ?", userID, otherUserID, dayAgo).
		First(&snapshotM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHiddenSnapshotNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hidden snapshot")
	}

	return toHiddenSnapshotDomain(&snapshotM), nil
}

func (repo *hiddenSnapshotRepository) FindByPair(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.HiddenSnapshot, error) {
	var snapshotModels []*model.HiddenSnapshotModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND other_user_id = ?", userID, otherUserID).
		Order("day_ago ASC").
		Find(&snapshotModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hidden snapshots")
	}

	snapshots := make([]*entity.HiddenSnapshot, 0, len(snapshotModels))
	for _, m := range snapshotModels {
		snapshots = append(snapshots, toHiddenSnapshotDomain(m))
	}

	return snapshots, nil
}

func (repo *hiddenSnapshotRepository) ReplaceForPair(ctx context.Context, userID, otherUserID uuid.UUID, snapshots []*entity.HiddenSnapshot) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND other_user_id = ?", userID, otherUserID).
			Delete(&model.HiddenSnapshotModel{}).Error
		if err != nil {
			return err
		}

		if len(snapshots) == 0 {
			return nil
		}

		models := make([]*model.HiddenSnapshotModel, 0, len(snapshots))
		for _, s := range snapshots {
			models = append(models, &model.HiddenSnapshotModel{
				UserID:      userID,
				OtherUserID: otherUserID,
				DayAgo:      s.DayAgo,
				Date:        s.Date.UTC(),
				Meet:        s.Meet,
				Spots:       s.Spots,
			})
		}

		return tx.Create(models).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace hidden snapshots")
	}

	return nil
}

func (repo *hiddenSnapshotRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? OR other_user_id = ?", userID, userID).
		Delete(&model.HiddenSnapshotModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete hidden snapshots by user")
	}

	return nil
}

func toHiddenSnapshotDomain(data *model.HiddenSnapshotModel) *entity.HiddenSnapshot {
	return &entity.HiddenSnapshot{
		UserID:      data.UserID,
		OtherUserID: data.OtherUserID,
		DayAgo:      data.DayAgo,
		Date:        data.Date.UTC(),
		Meet:        data.Meet,
		Spots:       data.Spots,
	}
}
