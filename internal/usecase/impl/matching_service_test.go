package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/infra/persistence/model"
	mockservice "crossing/internal/mocks/service"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordsOf returns the counterparts of the user's records around the fixture clock.
func (f *engineFixture) recordsOf(t *testing.T, userID uuid.UUID) []uuid.UUID {
	t.Helper()

	now := f.clock.Now()
	records, err := f.matchRecords.FindByUserBetween(context.Background(), userID, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	others := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		others = append(others, r.OtherUserID)
	}

	return others
}

func (f *engineFixture) pairCount(t *testing.T, a, b uuid.UUID) int64 {
	t.Helper()

	pair, err := f.pairs.FindByKey(context.Background(), entity.NewPairKey(a, b))
	if err != nil {
		require.ErrorIs(t, err, repository.ErrPairNotFound)

		return 0
	}

	return pair.MeetMatchingCount
}

func TestMatchingService_RunPass_IgnoresCallerCancellation(t *testing.T) {
	f := newEngineFixture(t)
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.matchingService(nil).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Flushed)
	assert.Equal(t, 1, report.Pairs)

	assert.Equal(t, []uuid.UUID{b}, f.recordsOf(t, a))
	assert.Equal(t, []uuid.UUID{a}, f.recordsOf(t, b))
	assert.Equal(t, int64(1), f.pairCount(t, a, b))
}

func TestMatchingService_RunPass_EmitsDirectionalRecords(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")
	far := f.seedUser(t, 32, "male")

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)
	f.ingest(t, far, songshan)

	closedID := f.epochs.Current().ID
	report, err := f.matchingService(nil).RunPass(ctx)
	require.NoError(t, err)

	assert.Equal(t, closedID, report.EpochID)
	assert.Equal(t, 1, report.Groups)
	assert.Equal(t, 3, report.Members)
	assert.Equal(t, 2, report.Events)
	assert.Equal(t, 2, report.Flushed)
	assert.Equal(t, 1, report.Pairs)
	assert.Greater(t, f.epochs.Current().ID, closedID)

	assert.Equal(t, []uuid.UUID{b}, f.recordsOf(t, a))
	assert.Equal(t, []uuid.UUID{a}, f.recordsOf(t, b))
	assert.Empty(t, f.recordsOf(t, far), "beyond the match radius")

	now := f.clock.Now()
	records, err := f.matchRecords.FindByPairBetween(ctx, a, b, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, closedID, records[0].EpochID)
	assert.True(t, records[0].MatchedAt.Equal(now))
	assert.True(t, records[0].ExpiresAt.Equal(now.Add(f.cfg.Crossing.MatchRecordTTL)))
	assert.InDelta(t, nearTaipei.Latitude, records[0].Coordinates.Latitude, 1e-4)
	assert.InDelta(t, taipei101.Latitude, records[0].SubjectCoordinates.Latitude, 1e-4)

	assert.Equal(t, int64(1), f.pairCount(t, a, b))
	assert.Empty(t, f.redis.Keys(), "closed epoch is purged")
}

func TestMatchingService_RunPass_SkipsBlockedPairs(t *testing.T) {
	f := newEngineFixture(t)
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")
	c := f.seedUser(t, 32, "male")
	f.block(t, c, a)

	f.ingest(t, a, taipei101)
	f.ingest(t, b, taipei101)
	f.ingest(t, c, nearTaipei)

	_, err := f.matchingService(nil).RunPass(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []uuid.UUID{b}, f.recordsOf(t, a))
	assert.ElementsMatch(t, []uuid.UUID{a, c}, f.recordsOf(t, b))
	assert.ElementsMatch(t, []uuid.UUID{b}, f.recordsOf(t, c))
	assert.Zero(t, f.pairCount(t, a, c))
}

func TestMatchingService_RunPass_HideIsDirectional(t *testing.T) {
	f := newEngineFixture(t)
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")
	f.hide(t, a, b)

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)

	report, err := f.matchingService(nil).RunPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Events)
	assert.Empty(t, f.recordsOf(t, a))
	assert.Equal(t, []uuid.UUID{a}, f.recordsOf(t, b))
	assert.Equal(t, int64(1), f.pairCount(t, a, b))
}

func TestMatchingService_RunPass_CountsPairOncePerEpoch(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")
	svc := f.matchingService(nil)

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)
	_, err := svc.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.pairCount(t, a, b))

	// nobody reported in the new epoch
	f.clock.Advance(10 * time.Minute)
	report, err := svc.RunPass(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Events)
	assert.Equal(t, int64(1), f.pairCount(t, a, b))

	f.clock.Advance(time.Minute)
	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)
	f.clock.Advance(9 * time.Minute)
	_, err = svc.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.pairCount(t, a, b))

	pair, err := f.pairs.FindByKey(ctx, entity.NewPairKey(a, b))
	require.NoError(t, err)
	assert.Equal(t, []string{entity.CategoryCrossing}, pair.Categories)
}

func TestMatchingService_RunPass_IngestDuringPassTargetsNewEpoch(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")
	late := f.seedUser(t, 32, "female")

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)
	closedID := f.epochs.Current().ID

	var once sync.Once
	hides := mockservice.NewMockHideService(t)
	hides.EXPECT().HiddenAmong(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, userID uuid.UUID, others []uuid.UUID) (map[uuid.UUID]bool, error) {
			once.Do(func() { f.ingest(t, late, taipei101) })

			return f.hides.HiddenAmong(ctx, userID, others)
		})

	report, err := f.matchingService(hides).RunPass(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Members)
	assert.Empty(t, f.recordsOf(t, late))
	assert.NotContains(t, f.recordsOf(t, a), late)

	current := f.epochs.Current().ID
	assert.NotEqual(t, closedID, current)
	assert.NotEmpty(t, f.groupOf(t, current, late), "late report survives the purge")
	assert.Empty(t, f.groupOf(t, closedID, a))
}

func TestMatchingService_RunPass_RejectsOverlap(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)

	var (
		svc       usecase.MatchingUsecase
		nestedErr error
		once      sync.Once
	)
	hides := mockservice.NewMockHideService(t)
	hides.EXPECT().HiddenAmong(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, userID uuid.UUID, others []uuid.UUID) (map[uuid.UUID]bool, error) {
			once.Do(func() { _, nestedErr = svc.RunPass(ctx) })

			return map[uuid.UUID]bool{}, nil
		})
	svc = f.matchingService(hides)

	report, err := svc.RunPass(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, nestedErr, domainerrors.ErrPassInProgress)
	assert.Equal(t, 2, report.Flushed)

	// the guard is released afterwards
	_, err = svc.RunPass(ctx)
	assert.NoError(t, err)
}

func TestMatchingService_RunPass_FlushFailureStillPurges(t *testing.T) {
	f := newEngineFixture(t)
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")

	f.ingest(t, a, taipei101)
	f.ingest(t, b, nearTaipei)
	require.NoError(t, f.db.Migrator().DropTable(&model.MatchRecordModel{}))

	report, err := f.matchingService(nil).RunPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Events)
	assert.Zero(t, report.Flushed)
	assert.Zero(t, report.Pairs)
	assert.Zero(t, f.pairCount(t, a, b), "nothing accumulates without a flush")
	assert.Empty(t, f.redis.Keys())
}

func TestMatchingService_RunPass_PurgesExpiredRows(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, 30, "female")
	b := f.seedUser(t, 31, "male")

	f.ingest(t, a, taipei101)
	f.seedCrossings(t, a, b, taipei101, f.clock.Now().Add(-9*24*time.Hour))

	f.clock.Advance(f.cfg.Crossing.GeoPointTTL + time.Minute)
	_, err := f.matchingService(nil).RunPass(ctx)
	require.NoError(t, err)

	_, err = f.geoPoints.FindLatestByUser(ctx, a, f.clock.Now().Add(-48*time.Hour))
	assert.ErrorIs(t, err, repository.ErrGeoPointNotFound)

	var remaining int64
	require.NoError(t, f.db.Model(&model.MatchRecordModel{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
