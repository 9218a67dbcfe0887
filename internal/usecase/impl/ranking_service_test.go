package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/infra/persistence/model"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ~62km from taipei101
var hsinchu = entity.Coordinates{Longitude: 120.9675, Latitude: 24.8066}

func minutesBefore(now time.Time, minutes ...int) []time.Time {
	times := make([]time.Time, 0, len(minutes))
	for _, m := range minutes {
		times = append(times, now.Add(-time.Duration(m)*time.Minute))
	}

	return times
}

func TestRankingService_List_Metrics(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 28, "male")

	f.seedCrossings(t, a, b, taipei101, minutesBefore(f.clock.Now(), 60, 55, 40, 35)...)
	for range 3 {
		require.NoError(t, f.pairs.Increment(ctx, entity.NewPairKey(a, b), entity.CategoryCrossing, f.clock.Now()))
	}

	page, err := f.rankingService().List(ctx, a, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, f.cfg.Crossing.PageSize, page.PageSize)
	assert.Equal(t, string(entity.RankingSortScore), page.Sort)
	assert.Equal(t, f.epochs.Current().ID, page.EpochID)

	require.Len(t, page.Items, 1)
	item := page.Items[0]
	assert.Equal(t, b, item.OtherUserID)
	assert.Equal(t, 4, item.Meet)
	assert.Equal(t, 2, item.Spots)
	assert.Equal(t, 26, item.Score)
	assert.Equal(t, int64(3), item.MeetCount)
	assert.Equal(t, 28, item.Age)
	assert.Equal(t, "male", item.Gender)
	assert.Equal(t, entity.BlurTypeNeighbor, item.BlurType)
	assert.False(t, item.Blurred)
	require.NotNil(t, item.Coordinates)
	assert.True(t, item.LastMatchedAt.Equal(f.clock.Now().Add(-35*time.Minute)))
}

func TestRankingService_List_CachedWithinEpoch(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 28, "male")
	c := f.seedUser(t, 33, "female")
	svc := f.rankingService()

	f.seedCrossings(t, a, b, taipei101, minutesBefore(f.clock.Now(), 30)...)

	first, err := svc.List(ctx, a, nil)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	stored, found, err := f.rankings.FindEpoch(ctx, a)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, f.epochs.Current().ID, stored)

	f.seedCrossings(t, a, c, taipei101, minutesBefore(f.clock.Now(), 20)...)

	second, err := svc.List(ctx, a, nil)
	require.NoError(t, err)
	assert.Len(t, second.Items, 1, "rows are reused inside an epoch")
	assert.Equal(t, first.EpochID, second.EpochID)

	f.clock.Advance(10 * time.Minute)
	f.epochs.Rotate(f.clock.Now())

	third, err := svc.List(ctx, a, nil)
	require.NoError(t, err)
	assert.Len(t, third.Items, 2)
	assert.Greater(t, third.EpochID, first.EpochID)

	stored, _, err = f.rankings.FindEpoch(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, third.EpochID, stored)
}

func TestRankingService_List_ExcludesBlockedAndHidden(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	blocked := f.seedUser(t, 28, "male")
	hidden := f.seedUser(t, 29, "male")
	visible := f.seedUser(t, 31, "male")
	f.block(t, blocked, a)
	f.hide(t, a, hidden)

	for _, other := range []uuid.UUID{blocked, hidden, visible} {
		f.seedCrossings(t, a, other, taipei101, minutesBefore(f.clock.Now(), 30)...)
	}

	page, err := f.rankingService().List(ctx, a, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, visible, page.Items[0].OtherUserID)
}

func TestRankingService_List_SkipsDeletedCounterparts(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")

	f.seedCrossings(t, a, uuid.New(), taipei101, minutesBefore(f.clock.Now(), 30)...)

	page, err := f.rankingService().List(ctx, a, nil)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestRankingService_List_Filters(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	young := f.seedUser(t, 22, "male")
	old := f.seedUser(t, 45, "female")

	f.seedCrossings(t, a, young, taipei101, minutesBefore(f.clock.Now(), 50, 30)...)
	f.seedCrossings(t, a, old, taipei101, minutesBefore(f.clock.Now(), 30)...)
	svc := f.rankingService()

	page, err := svc.List(ctx, a, &usecase.RankingQuery{Sort: "meet"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, young, page.Items[0].OtherUserID)

	minAge := 30
	page, err = svc.List(ctx, a, &usecase.RankingQuery{MinAge: &minAge})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, old, page.Items[0].OtherUserID)

	page, err = svc.List(ctx, a, &usecase.RankingQuery{Gender: "male"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, young, page.Items[0].OtherUserID)

	page, err = svc.List(ctx, a, &usecase.RankingQuery{Page: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestRankingService_List_BlurLong(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 28, "male")
	f.seedHome(t, a, taipei101)
	f.seedHome(t, b, hsinchu)

	f.seedCrossings(t, a, b, taipei101, minutesBefore(f.clock.Now(), 30)...)
	svc := f.rankingService()

	page, err := svc.List(ctx, a, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.BlurTypeLong, page.Items[0].BlurType)
	assert.True(t, page.Items[0].Blurred)
	assert.Nil(t, page.Items[0].Coordinates)

	require.NoError(t, f.db.Create(&model.PurchaseLogModel{
		ID:          uuid.New(),
		BuyerID:     a,
		TargetID:    b,
		Category:    entity.BlurTypeLong.Category(),
		PurchasedAt: f.clock.Now().Add(-time.Hour),
	}).Error)

	page, err = svc.List(ctx, a, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.Items[0].Blurred)
	assert.NotNil(t, page.Items[0].Coordinates)
}

func TestRankingService_List_BlurTravelLiftedByPass(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 28, "male")
	f.seedHome(t, a, hsinchu)

	f.seedCrossings(t, a, b, taipei101, minutesBefore(f.clock.Now(), 30)...)
	svc := f.rankingService()

	page, err := svc.List(ctx, a, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.BlurTypeTravel, page.Items[0].BlurType)
	assert.True(t, page.Items[0].Blurred)

	require.NoError(t, f.db.Create(&model.PassModel{
		ID:        uuid.New(),
		UserID:    a,
		Category:  entity.BlurTypeTravel.Category(),
		StartsAt:  f.clock.Now().Add(-time.Hour),
		ExpiresAt: f.clock.Now().Add(time.Hour),
	}).Error)

	page, err = svc.List(ctx, a, nil)
	require.NoError(t, err)
	assert.False(t, page.Items[0].Blurred)
}

func TestRankingService_List_InvalidQuery(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	svc := f.rankingService()

	_, err := svc.List(ctx, a, &usecase.RankingQuery{Sort: "distance"})
	assertValidationError(t, err, "sort")

	_, err = svc.List(ctx, a, &usecase.RankingQuery{Page: -1})
	assertValidationError(t, err, "page")

	_, err = svc.List(ctx, a, &usecase.RankingQuery{Page: math.MaxInt})
	assertValidationError(t, err, "page")

	minAge, maxAge := 40, 20
	_, err = svc.List(ctx, a, &usecase.RankingQuery{MinAge: &minAge, MaxAge: &maxAge})
	assertValidationError(t, err, "minAge")
}

func TestRankingService_List_UnknownUser(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.rankingService().List(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
