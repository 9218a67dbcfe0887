package postgres

import (
	"context"
	"testing"

	"crossing/internal/domain/entity"
	"crossing/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	home := &entity.Address{OwnerID: owner, Kind: entity.AddressKindHome, Label: "Home", FullAddress: "Taipei", Latitude: 25.03, Longitude: 121.56}
	zone := &entity.Address{OwnerID: owner, Kind: entity.AddressKindPrivacyZone, Label: "Office", FullAddress: "Xinyi", Latitude: 25.04, Longitude: 121.57, RadiusMeters: 300}
	require.NoError(t, repo.CreateAddress(ctx, home))
	require.NoError(t, repo.CreateAddress(ctx, zone))
	assert.NotEqual(t, uuid.Nil, zone.ID)

	zones, err := repo.FindAddressesByOwner(ctx, owner, entity.AddressKindPrivacyZone)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.InDelta(t, 300, zones[0].RadiusMeters, 0.001)

	homes, err := repo.FindHomesByOwners(ctx, []uuid.UUID{owner, uuid.New()})
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, home.ID, homes[owner].ID)

	require.NoError(t, repo.DeleteAddress(ctx, zone.ID))
	_, err = repo.FindAddressByID(ctx, zone.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.ErrorIs(t, repo.DeleteAddress(ctx, zone.ID), repository.ErrAddressNotFound)
}
