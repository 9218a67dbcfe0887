package postgres

import (
	"context"
	"testing"
	"time"

	"crossing/internal/domain/entity"
	"crossing/internal/domain/service"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockService(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	ctx := context.Background()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, db.Create(&model.UserBlockModel{BlockerID: a, BlockedID: b}).Error)
	require.NoError(t, db.Create(&model.UserBlockModel{BlockerID: c, BlockedID: a}).Error)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	set := entity.NewBlockSet(all)
	assert.True(t, set.Blocked(b, a))
	assert.True(t, set.Blocked(a, c))
	assert.False(t, set.Blocked(b, c))

	byB, err := svc.ListByUser(ctx, b)
	require.NoError(t, err)
	assert.Len(t, byB, 1)
}

func TestHideService(t *testing.T) {
	db := newTestDB(t)
	svc := NewHideService(db)
	ctx := context.Background()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, db.Create(&model.UserHideModel{UserID: a, HiddenUserID: b}).Error)

	reverse, err := svc.HiddenAmong(ctx, b, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Empty(t, reverse, "hiding is directional")

	among, err := svc.HiddenAmong(ctx, a, []uuid.UUID{b, c})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{b: true}, among)
}

func TestProfileService(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	ctx := context.Background()

	active := uuid.New()
	deleted := uuid.New()
	deletedAt := time.Now().UTC()
	require.NoError(t, db.Create(&model.UserModel{ID: active, DisplayName: "amy", Age: 28, Gender: "female"}).Error)
	require.NoError(t, db.Create(&model.UserModel{ID: deleted, DeletedAt: &deletedAt}).Error)

	profile, err := svc.FindProfile(ctx, active)
	require.NoError(t, err)
	assert.Equal(t, 28, profile.Age)
	assert.Nil(t, profile.QuietWindow)

	_, err = svc.FindProfile(ctx, deleted)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)

	require.NoError(t, svc.SetQuietWindow(ctx, active, &entity.QuietWindow{StartMinute: 23 * 60, EndMinute: 7 * 60}))
	profile, err = svc.FindProfile(ctx, active)
	require.NoError(t, err)
	require.NotNil(t, profile.QuietWindow)
	assert.Equal(t, 23*60, profile.QuietWindow.StartMinute)

	require.NoError(t, svc.SetQuietWindow(ctx, active, nil))
	profiles, err := svc.FindProfiles(ctx, []uuid.UUID{active, deleted})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Nil(t, profiles[active].QuietWindow)

	err = svc.SetQuietWindow(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestEntitlementService(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	userID, other := uuid.New(), uuid.New()
	require.NoError(t, db.Create(&model.PassModel{ID: uuid.New(), UserID: userID, Category: "travel", StartsAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&model.PassModel{ID: uuid.New(), UserID: userID, Category: "long", StartsAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&model.PurchaseLogModel{ID: uuid.New(), BuyerID: userID, TargetID: other, Category: "long", PurchasedAt: now.Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&model.PurchaseLogModel{ID: uuid.New(), BuyerID: userID, TargetID: other, Category: "travel", PurchasedAt: now.Add(-48 * time.Hour)}).Error)

	passes, err := svc.ActivePassCategories(ctx, userID, now)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"travel": true}, passes)

	purchased, err := svc.PurchasedSince(ctx, userID, []uuid.UUID{other}, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"long": true}, purchased[other])
}

func TestGeocoder(t *testing.T) {
	db := newTestDB(t)
	geocoder := NewGeocoder(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.PlaceModel{Name: "Springfield", Country: "US", Latitude: 39.78, Longitude: -89.65, Population: 114000}).Error)
	require.NoError(t, db.Create(&model.PlaceModel{Name: "Springfield", Country: "AU", Latitude: -33.63, Longitude: 150.56, Population: 2000}).Error)

	place, err := geocoder.Geocode(ctx, "springfield")
	require.NoError(t, err)
	assert.Equal(t, "US", place.Country)

	place, err = geocoder.Geocode(ctx, "Springfield, au")
	require.NoError(t, err)
	assert.Equal(t, "AU", place.Country)

	_, err = geocoder.Geocode(ctx, "Nowhere")
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)
}
