package postgres

import (
	"context"
	"time"

	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/service"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// entitlementService reads passes and single-item purchases written by the
// payment domain.
type entitlementService struct {
	db *gorm.DB
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(db *gorm.DB) service.EntitlementService {
	return &entitlementService{db: db}
}

func (s *entitlementService) ActivePassCategories(ctx context.Context, userID uuid.UUID, at time.Time) (map[string]bool, error) {
	var categories []string
	err := s.db.WithContext(ctx).
		Model(&model.PassModel{}).
		Where("user_id = ? AND starts_at <= ? AND expires_at > ?", userID, at.UTC(), at.UTC()).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list active passes")
	}

	active := make(map[string]bool, len(categories))
	for _, c := range categories {
		active[c] = true
	}

	return active, nil
}

func (s *entitlementService) PurchasedSince(ctx context.Context, userID uuid.UUID, others []uuid.UUID, since time.Time) (map[uuid.UUID]map[string]bool, error) {
	purchased := make(map[uuid.UUID]map[string]bool)
	if len(others) == 0 {
		return purchased, nil
	}

	var logModels []*model.PurchaseLogModel
	err := s.db.WithContext(ctx).
		Where("buyer_id = ? AND target_id IN ? AND purchased_at >= ?", userID, others, since.UTC()).
		Find(&logModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list purchases")
	}

	for _, m := range logModels {
		if purchased[m.TargetID] == nil {
			purchased[m.TargetID] = make(map[string]bool)
		}
		purchased[m.TargetID][m.Category] = true
	}

	return purchased, nil
}
