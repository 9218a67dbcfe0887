package impl

import (
	"context"
	"testing"
	"time"

	"crossing/internal/domain/entity"
	"crossing/internal/domain/repository"
	"crossing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairService_TagCategory(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	svc := f.pairService()

	require.NoError(t, svc.TagCategory(ctx, a, b, "chat"))

	pair, err := f.pairs.FindByKey(ctx, entity.NewPairKey(a, b))
	require.NoError(t, err)
	assert.Zero(t, pair.MeetMatchingCount)
	assert.Equal(t, []string{"chat"}, pair.Categories)
	assert.True(t, pair.HasCrossFeatureMatch())

	require.NoError(t, f.pairs.Increment(ctx, entity.NewPairKey(a, b), entity.CategoryCrossing, f.clock.Now()))
	require.NoError(t, svc.TagCategory(ctx, b, a, "chat"))

	pair, err = f.pairs.FindByKey(ctx, entity.NewPairKey(a, b))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pair.MeetMatchingCount)
	assert.ElementsMatch(t, []string{"chat", entity.CategoryCrossing}, pair.Categories)

	assertValidationError(t, svc.TagCategory(ctx, a, b, "  "), "category")
	assertValidationError(t, svc.TagCategory(ctx, a, a, "chat"), "otherUserId")
}

func TestPairService_BlockLifecycle(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 28, "male")
	svc := f.pairService()
	key := entity.NewPairKey(a, b)

	require.NoError(t, f.pairs.Increment(ctx, key, entity.CategoryCrossing, f.clock.Now()))
	f.seedCrossings(t, a, b, taipei101, f.clock.Now().Add(-30*time.Minute))
	f.seedCrossings(t, b, a, taipei101, f.clock.Now().Add(-30*time.Minute))
	for _, userID := range []uuid.UUID{a, b} {
		_, err := f.rankingService().List(ctx, userID, nil)
		require.NoError(t, err)
	}

	f.block(t, a, b)
	f.block(t, b, a)
	require.NoError(t, svc.OnBlocked(ctx, a, b))

	pair, err := f.pairs.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, entity.PairStatusSuspended, pair.Status)

	var rows int64
	require.NoError(t, f.db.Model(&model.RankingEntryModel{}).Count(&rows).Error)
	assert.Zero(t, rows)

	// a lifts their block but b still blocks a
	require.NoError(t, f.db.Where("blocker_id = ?", a).Delete(&model.UserBlockModel{}).Error)
	require.NoError(t, svc.OnUnblocked(ctx, a, b))
	pair, err = f.pairs.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, entity.PairStatusSuspended, pair.Status)

	require.NoError(t, f.db.Where("blocker_id = ?", b).Delete(&model.UserBlockModel{}).Error)
	require.NoError(t, svc.OnUnblocked(ctx, b, a))
	pair, err = f.pairs.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, entity.PairStatusActive, pair.Status)
	assert.Equal(t, int64(1), pair.MeetMatchingCount, "history survives a block")
}

func TestPairService_OnBlocked_WithoutPair(t *testing.T) {
	f := newEngineFixture(t)

	assert.NoError(t, f.pairService().OnBlocked(context.Background(), uuid.New(), uuid.New()))
}

func TestPairService_OnAccountDeleted(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 28, "male")
	c := f.seedUser(t, 33, "female")

	f.ingest(t, a, taipei101)
	require.NoError(t, f.pairs.Increment(ctx, entity.NewPairKey(a, b), entity.CategoryCrossing, f.clock.Now()))
	require.NoError(t, f.pairs.Increment(ctx, entity.NewPairKey(b, c), entity.CategoryCrossing, f.clock.Now()))
	yesterday := f.clock.Now().Add(-24 * time.Hour)
	f.seedCrossings(t, a, b, taipei101, yesterday)
	f.seedCrossings(t, b, a, taipei101, yesterday)
	f.seedCrossings(t, b, c, taipei101, yesterday)
	_, err := f.hiddenHistoryService().Trail(ctx, b, a)
	require.NoError(t, err)

	require.NoError(t, f.pairService().OnAccountDeleted(ctx, a))

	_, err = f.pairs.FindByKey(ctx, entity.NewPairKey(a, b))
	assert.ErrorIs(t, err, repository.ErrPairNotFound)
	_, err = f.pairs.FindByKey(ctx, entity.NewPairKey(b, c))
	assert.NoError(t, err, "other pairs are untouched")

	_, err = f.geoPoints.FindLatestByUser(ctx, a, f.clock.Now())
	assert.ErrorIs(t, err, repository.ErrGeoPointNotFound)

	records, err := f.matchRecords.FindByUserBetween(ctx, b, yesterday.Add(-time.Hour), f.clock.Now())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, c, records[0].OtherUserID)

	snapshots, err := f.snapshots.FindByPair(ctx, b, a)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}
