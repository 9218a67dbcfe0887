// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crossing/internal/domain/entity"
	"crossing/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for home and privacy-zone addresses.
type AddressRepository interface {
	// CreateAddress persists a new address for an owner.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves all addresses of one kind for an owner.
	FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error)

	// FindHomesByOwners retrieves the home address of each owner that has one.
	FindHomesByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]*entity.Address, error)

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
