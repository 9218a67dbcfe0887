package postgres

import (
	"context"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/service"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileService reads account profiles from the users table. Soft-deleted
// accounts are treated as missing.
type profileService struct {
	db *gorm.DB
}

// NewProfileService is the constructor for profileService.
func NewProfileService(db *gorm.DB) service.ProfileService {
	return &profileService{db: db}
}

func (s *profileService) FindProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var userM model.UserModel
	err := s.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toProfileDomain(&userM), nil
}

func (s *profileService) FindProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	profiles := make(map[uuid.UUID]*entity.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	var userModels []*model.UserModel
	err := s.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", userIDs).
		Find(&userModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profiles")
	}

	for _, userM := range userModels {
		profiles[userM.ID] = toProfileDomain(userM)
	}

	return profiles, nil
}

func (s *profileService) SetQuietWindow(ctx context.Context, userID uuid.UUID, window *entity.QuietWindow) error {
	updates := map[string]any{"quiet_start_minute": nil, "quiet_end_minute": nil}
	if window != nil {
		updates["quiet_start_minute"] = window.StartMinute
		updates["quiet_end_minute"] = window.EndMinute
	}

	result := s.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", userID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update quiet window")
	}

	if result.RowsAffected == 0 {
		return service.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(data *model.UserModel) *entity.Profile {
	profile := &entity.Profile{
		UserID:      data.ID,
		DisplayName: data.DisplayName,
		Age:         data.Age,
		Gender:      data.Gender,
	}

	if data.QuietStartMinute != nil && data.QuietEndMinute != nil {
		profile.QuietWindow = &entity.QuietWindow{
			StartMinute: *data.QuietStartMinute,
			EndMinute:   *data.QuietEndMinute,
		}
	}

	return profile
}
