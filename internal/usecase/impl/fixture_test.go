package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"crossing/config"
	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/domain/service"
	rediscache "crossing/internal/infra/cache/redis"
	"crossing/internal/infra/epoch"
	"crossing/internal/infra/persistence/model"
	"crossing/internal/infra/persistence/postgres"
	"crossing/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	taipei101  = entity.Coordinates{Longitude: 121.5645, Latitude: 25.0340}
	nearTaipei = entity.Coordinates{Longitude: 121.5700, Latitude: 25.0380} // ~700m from taipei101
	songshan   = entity.Coordinates{Longitude: 121.5780, Latitude: 25.0630} // ~3.5km from taipei101
	taoyuan    = entity.Coordinates{Longitude: 121.3010, Latitude: 24.9936} // ~27km from taipei101
)

// fixedClock only moves when a test advances it.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// engineFixture wires the real repositories on SQLite and the group index
// on miniredis around a fixed clock.
type engineFixture struct {
	db     *gorm.DB
	redis  *miniredis.Miniredis
	clock  *fixedClock
	epochs *epoch.State
	cfg    *config.Config
	logger *slog.Logger

	groups       repository.GroupIndex
	geoPoints    repository.GeoPointRepository
	addresses    repository.AddressRepository
	matchRecords repository.MatchRecordRepository
	pairs        repository.PairAggregateRepository
	rankings     repository.RankingRepository
	snapshots    repository.HiddenSnapshotRepository
	txManager    repository.TransactionManager

	profiles     service.ProfileService
	blocks       service.BlockService
	hides        service.HideService
	entitlements service.EntitlementService
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Redis:    &config.RedisConfig{KeyPrefix: "test"},
		Crossing: config.DefaultCrossingConfig(),
		Blur:     config.DefaultBlurConfig(),
	}

	clk := &fixedClock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	return &engineFixture{
		db:     db,
		redis:  mr,
		clock:  clk,
		epochs: epoch.New(clk),
		cfg:    cfg,
		logger: newDiscardLogger(),

		groups:       rediscache.NewGroupIndex(client, cfg),
		geoPoints:    postgres.NewGeoPointRepository(db),
		addresses:    postgres.NewAddressRepository(db),
		matchRecords: postgres.NewMatchRecordRepository(db),
		pairs:        postgres.NewPairAggregateRepository(db),
		rankings:     postgres.NewRankingRepository(db),
		snapshots:    postgres.NewHiddenSnapshotRepository(db),
		txManager:    postgres.NewTransactionManager(db),

		profiles:     postgres.NewProfileService(db),
		blocks:       postgres.NewBlockService(db),
		hides:        postgres.NewHideService(db),
		entitlements: postgres.NewEntitlementService(db),
	}
}

func (f *engineFixture) seedUser(t *testing.T, age int, gender string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, f.db.Create(&model.UserModel{ID: id, DisplayName: id.String()[:8], Age: age, Gender: gender}).Error)

	return id
}

func (f *engineFixture) seedHome(t *testing.T, userID uuid.UUID, at entity.Coordinates) {
	t.Helper()

	require.NoError(t, f.addresses.CreateAddress(context.Background(), &entity.Address{
		OwnerID:     userID,
		Kind:        entity.AddressKindHome,
		Label:       "Home",
		FullAddress: "home",
		Latitude:    at.Latitude,
		Longitude:   at.Longitude,
	}))
}

func (f *engineFixture) block(t *testing.T, blockerID, blockedID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.UserBlockModel{BlockerID: blockerID, BlockedID: blockedID}).Error)
}

func (f *engineFixture) hide(t *testing.T, userID, hiddenUserID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.UserHideModel{UserID: userID, HiddenUserID: hiddenUserID}).Error)
}

// seedCrossings stores records from userID towards otherUserID at the given times.
func (f *engineFixture) seedCrossings(t *testing.T, userID, otherUserID uuid.UUID, at entity.Coordinates, times ...time.Time) {
	t.Helper()

	records := make([]*entity.MatchRecord, 0, len(times))
	for _, ts := range times {
		records = append(records, &entity.MatchRecord{
			UserID:             userID,
			OtherUserID:        otherUserID,
			Coordinates:        at,
			SubjectCoordinates: at,
			MatchedAt:          ts,
			ExpiresAt:          ts.Add(f.cfg.Crossing.MatchRecordTTL),
		})
	}
	require.NoError(t, f.matchRecords.CreateBatch(context.Background(), records))
}

func (f *engineFixture) locationService() usecase.LocationUsecase {
	return NewLocationService(LocationServiceParams{
		GeoPoints: f.geoPoints,
		Addresses: f.addresses,
		Groups:    f.groups,
		Profiles:  f.profiles,
		Epochs:    f.epochs,
		Clock:     f.clock,
		Config:    f.cfg,
		Logger:    f.logger,
	})
}

func (f *engineFixture) matchingService(hides service.HideService) usecase.MatchingUsecase {
	if hides == nil {
		hides = f.hides
	}

	return NewMatchingService(MatchingServiceParams{
		Epochs:       f.epochs,
		Groups:       f.groups,
		MatchRecords: f.matchRecords,
		GeoPoints:    f.geoPoints,
		TxManager:    f.txManager,
		Blocks:       f.blocks,
		Hides:        hides,
		Clock:        f.clock,
		Config:       f.cfg,
		Logger:       f.logger,
	})
}

func (f *engineFixture) rankingService() usecase.RankingUsecase {
	return NewRankingService(RankingServiceParams{
		Rankings:     f.rankings,
		MatchRecords: f.matchRecords,
		Pairs:        f.pairs,
		Addresses:    f.addresses,
		Profiles:     f.profiles,
		Blocks:       f.blocks,
		Hides:        f.hides,
		Entitlements: f.entitlements,
		Epochs:       f.epochs,
		Clock:        f.clock,
		Config:       f.cfg,
		Logger:       f.logger,
	})
}

func (f *engineFixture) hiddenHistoryService() usecase.HiddenHistoryUsecase {
	return NewHiddenHistoryService(HiddenHistoryServiceParams{
		Snapshots:    f.snapshots,
		MatchRecords: f.matchRecords,
		Profiles:     f.profiles,
		Clock:        f.clock,
		Config:       f.cfg,
		Logger:       f.logger,
	})
}

func (f *engineFixture) pairService() usecase.PairUsecase {
	return NewPairService(PairServiceParams{
		TxManager: f.txManager,
		Pairs:     f.pairs,
		Blocks:    f.blocks,
		Clock:     f.clock,
		Logger:    f.logger,
	})
}

func (f *engineFixture) ingest(t *testing.T, userID uuid.UUID, at entity.Coordinates) {
	t.Helper()

	result, err := f.locationService().Ingest(context.Background(), userID, &usecase.IngestInput{Longitude: at.Longitude, Latitude: at.Latitude})
	require.NoError(t, err)
	require.True(t, result.Accepted)
}

// groupOf returns the group the user belongs to in the epoch, or "".
func (f *engineFixture) groupOf(t *testing.T, epochID int64, userID uuid.UUID) string {
	t.Helper()
	ctx := context.Background()

	groupIDs, err := f.groups.Groups(ctx, epochID)
	require.NoError(t, err)

	for _, groupID := range groupIDs {
		members, err := f.groups.Members(ctx, epochID, groupID)
		require.NoError(t, err)
		for _, m := range members {
			if m == userID {
				return groupID
			}
		}
	}

	return ""
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), field)
}
