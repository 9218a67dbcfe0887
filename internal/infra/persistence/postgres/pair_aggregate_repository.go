package postgres

import (
	"context"
	"slices"
	"time"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pairAggregateRepository struct {
	db *gorm.DB
}

// NewPairAggregateRepository is the constructor for pairAggregateRepository.
func NewPairAggregateRepository(db *gorm.DB) repository.PairAggregateRepository {
	return &pairAggregateRepository{db: db}
}

func (repo *pairAggregateRepository) Increment(ctx context.Context, key entity.PairKey, category string, now time.Time) error {
	return repo.upsert(ctx, key, category, 1, now)
}

func (repo *pairAggregateRepository) AddCategory(ctx context.Context, key entity.PairKey, category string, now time.Time) error {
	return repo.upsert(ctx, key, category, 0, now)
}

// upsert creates the pair or bumps its counter by delta in one statement, so a
// concurrent creation never surfaces as a unique violation inside a transaction.
// The category is merged by a second statement.
func (repo *pairAggregateRepository) upsert(ctx context.Context, key entity.PairKey, category string, delta int64, now time.Time) error {
	pairM := &model.PairAggregateModel{
		ID:                uuid.New(),
		UserLow:           key.Low,
		UserHigh:          key.High,
		MeetMatchingCount: delta,
		Categories:        datatypes.NewJSONSlice([]string{category}),
		Status:            string(entity.PairStatusActive),
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_low"}, {Name: "user_high"}},
			DoUpdates: clause.Assignments(map[string]any{
				"meet_matching_count": gorm.Expr("pair_aggregates.meet_matching_count + ?", delta),
				"updated_at":          now.UTC(),
			}),
		}).
		Create(pairM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert pair aggregate")
	}

	return repo.mergeCategory(ctx, key, category)
}

func (repo *pairAggregateRepository) mergeCategory(ctx context.Context, key entity.PairKey, category string) error {
	existing, err := repo.findModel(ctx, key)
	if err != nil {
		return err
	}
	if slices.Contains(existing.Categories, category) {
		return nil
	}

	err = repo.db.WithContext(ctx).
		Model(&model.PairAggregateModel{}).
		Where("id = ?", existing.ID).
		Update("categories", datatypes.NewJSONSlice(append(slices.Clone([]string(existing.Categories)), category))).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to merge pair category")
	}

	return nil
}

func (repo *pairAggregateRepository) FindByKey(ctx context.Context, key entity.PairKey) (*entity.PairAggregate, error) {
	pairM, err := repo.findModel(ctx, key)
	if err != nil {
		return nil, err
	}

	return toPairAggregateDomain(pairM), nil
}

func (repo *pairAggregateRepository) findModel(ctx context.Context, key entity.PairKey) (*model.PairAggregateModel, error) {
	var pairM model.PairAggregateModel
	err := repo.db.WithContext(ctx).
		Where("user_low = ? AND user_high = ?", key.Low, key.High).
		First(&pairM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPairNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pair aggregate")
	}

	return &pairM, nil
}

func (repo *pairAggregateRepository) FindByKeys(ctx context.Context, keys []entity.PairKey) (map[entity.PairKey]*entity.PairAggregate, error) {
	result := make(map[entity.PairKey]*entity.PairAggregate, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	wanted := make(map[entity.PairKey]struct{}, len(keys))
	lows := make([]uuid.UUID, 0, len(keys))
	highs := make([]uuid.UUID, 0, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
		lows = append(lows, k.Low)
		highs = append(highs, k.High)
	}

	var pairModels []*model.PairAggregateModel
	err := repo.db.WithContext(ctx).
		Where("user_low IN ? AND user_high IN ?", lows, highs).
		Find(&pairModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pair aggregates")
	}

	// The IN x IN query over-selects; keep only the requested pairs.
	for _, pairM := range pairModels {
		key := entity.PairKey{Low: pairM.UserLow, High: pairM.UserHigh}
		if _, ok := wanted[key]; ok {
			result[key] = toPairAggregateDomain(pairM)
		}
	}

	return result, nil
}

func (repo *pairAggregateRepository) SetStatus(ctx context.Context, key entity.PairKey, status entity.PairStatus, now time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PairAggregateModel{}).
		Where("user_low = ? AND user_high = ?", key.Low, key.High).
		Updates(map[string]any{"status": string(status), "updated_at": now.UTC()}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update pair status")
	}

	return nil
}

func (repo *pairAggregateRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_low = ? OR user_high = ?", userID, userID).
		Delete(&model.PairAggregateModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete pair aggregates by user")
	}

	return nil
}

func toPairAggregateDomain(data *model.PairAggregateModel) *entity.PairAggregate {
	return &entity.PairAggregate{
		ID:                data.ID,
		Key:               entity.PairKey{Low: data.UserLow, High: data.UserHigh},
		MeetMatchingCount: data.MeetMatchingCount,
		Categories:        slices.Clone([]string(data.Categories)),
		Status:            entity.PairStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
