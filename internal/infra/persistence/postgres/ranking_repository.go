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
	"gorm.io/gorm/clause"
)

const rankingBatchSize = 200

var rankingSortColumns = map[entity.RankingSort]string{
	entity.RankingSortMeet:      "meet",
	entity.RankingSortMeetCount: "meet_count",
	entity.RankingSortSpots:     "spots",
	entity.RankingSortScore:     "score",
}

type rankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository is the constructor for rankingRepository.
func NewRankingRepository(db *gorm.DB) repository.RankingRepository {
	return &rankingRepository{db: db}
}

func (repo *rankingRepository) FindEpoch(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	var entryM model.RankingEntryModel
	err := repo.db.WithContext(ctx).
		Select("updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}

		return 0, false, domainerrors.NewDatabaseExecuteError(err, "failed to find ranking epoch")
	}

	return entryM.EpochID, true, nil
}

func (repo *rankingRepository) Replace(ctx context.Context, userID uuid.UUID, entries []*entity.RankingEntry) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.RankingEntryModel{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		models := make([]*model.RankingEntryModel, 0, len(entries))
		for _, e := range entries {
			models = append(models, fromRankingEntryDomain(e))
		}

		return tx.CreateInBatches(models, rankingBatchSize).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace ranking entries")
	}

	return nil
}

func (repo *rankingRepository) List(ctx context.Context, userID uuid.UUID, filter entity.RankingFilter) ([]*entity.RankingEntry, error) {
	column, ok := rankingSortColumns[filter.Sort]
	if !ok {
		column = rankingSortColumns[entity.RankingSortScore]
	}

	query := repo.db.WithContext(ctx).Where("user_id = ? AND hide = ?", userID, false)
	if filter.MinAge != nil {
		query = query.Where("age >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		query = query.Where("age <= ?", *filter.MaxAge)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}

	var entryModels []*model.RankingEntryModel
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "other_user_id"}}).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&entryModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ranking entries")
	}

	entries := make([]*entity.RankingEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, toRankingEntryDomain(m))
	}

	return entries, nil
}

func (repo *rankingRepository) DeletePair(ctx context.Context, a, b uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("(user_id = ? AND other_user_id = ?) OR (user_id = ? AND other_user_id = ?)", a, b, b, a).
		Delete(&model.RankingEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ranking pair")
	}

	return nil
}

func (repo *rankingRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? OR other_user_id = ?", userID, userID).
		Delete(&model.RankingEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ranking entries by user")
	}

	return nil
}

func toRankingEntryDomain(data *model.RankingEntryModel) *entity.RankingEntry {
	return &entity.RankingEntry{
		UserID:          data.UserID,
		OtherUserID:     data.OtherUserID,
		Meet:            data.Meet,
		Spots:           data.Spots,
		MeetCount:       data.MeetCount,
		Score:           data.Score,
		Age:             data.Age,
		Gender:          data.Gender,
		Hide:            data.Hide,
		BlurType:        entity.BlurType(data.BlurType),
		LastCoordinates: entity.Coordinates{Longitude: data.LastLongitude, Latitude: data.LastLatitude},
		LastMatchedAt:   data.LastMatchedAt.UTC(),
		UpdatedAt:       data.EpochID,
	}
}

func fromRankingEntryDomain(data *entity.RankingEntry) *model.RankingEntryModel {
	return &model.RankingEntryModel{
		UserID:        data.UserID,
		OtherUserID:   data.OtherUserID,
		Meet:          data.Meet,
		Spots:         data.Spots,
		MeetCount:     data.MeetCount,
		Score:         data.Score,
		Age:           data.Age,
		Gender:        data.Gender,
		Hide:          data.Hide,
		BlurType:      string(data.BlurType),
		LastLongitude: data.LastCoordinates.Longitude,
		LastLatitude:  data.LastCoordinates.Latitude,
		LastMatchedAt: data.LastMatchedAt.UTC(),
		EpochID:       data.UpdatedAt,
	}
}
