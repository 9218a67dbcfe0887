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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for an owner.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner retrieves all addresses of one kind for an owner.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ?", ownerID, kind.String()).
		Order("created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindHomesByOwners retrieves the home address of each owner. When an owner
// has several homes the oldest one wins.
func (repo *addressRepository) FindHomesByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]*entity.Address, error) {
	homes := make(map[uuid.UUID]*entity.Address, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return homes, nil
	}

	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_id IN ? AND kind = ?", ownerIDs, entity.AddressKindHome.String()).
		Order("created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find homes by owners")
	}

	for _, addressM := range addressModels {
		if _, ok := homes[addressM.OwnerID]; ok {
			continue
		}
		homes[addressM.OwnerID] = toAddressDomain(addressM)
	}

	return homes, nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Kind:         entity.AddressKind(data.Kind),
		Label:        data.Label,
		FullAddress:  data.FullAddress,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Kind:         data.Kind.String(),
		Label:        data.Label,
		FullAddress:  data.FullAddress,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
