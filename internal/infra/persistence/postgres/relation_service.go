package postgres

import (
	"context"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/service"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// blockService reads block relations from the account domain's user_blocks table.
type blockService struct {
	db *gorm.DB
}

// NewBlockService is the constructor for blockService.
func NewBlockService(db *gorm.DB) service.BlockService {
	return &blockService{db: db}
}

func (s *blockService) ListAll(ctx context.Context) ([]entity.BlockRelation, error) {
	var blockModels []*model.UserBlockModel
	if err := s.db.WithContext(ctx).Find(&blockModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list block relations")
	}

	return toBlockRelations(blockModels), nil
}

func (s *blockService) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.BlockRelation, error) {
	var blockModels []*model.UserBlockModel
	err := s.db.WithContext(ctx).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID).
		Find(&blockModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list block relations by user")
	}

	return toBlockRelations(blockModels), nil
}

func toBlockRelations(data []*model.UserBlockModel) []entity.BlockRelation {
	relations := make([]entity.BlockRelation, 0, len(data))
	for _, m := range data {
		relations = append(relations, entity.BlockRelation{BlockerID: m.BlockerID, BlockedID: m.BlockedID})
	}

	return relations
}

// hideService reads hide relations from the account domain's user_hides table.
type hideService struct {
	db *gorm.DB
}

// NewHideService is the constructor for hideService.
func NewHideService(db *gorm.DB) service.HideService {
	return &hideService{db: db}
}

func (s *hideService) HiddenAmong(ctx context.Context, userID uuid.UUID, others []uuid.UUID) (map[uuid.UUID]bool, error) {
	hidden := make(map[uuid.UUID]bool)
	if len(others) == 0 {
		return hidden, nil
	}

	var hiddenIDs []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&model.UserHideModel{}).
		Where("user_id = ? AND hidden_user_id IN ?", userID, others).
		Pluck("hidden_user_id", &hiddenIDs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list hide relations")
	}

	for _, id := range hiddenIDs {
		hidden[id] = true
	}

	return hidden, nil
}
