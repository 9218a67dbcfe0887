package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"crossing/config"
	deliverycontext "crossing/internal/delivery/context"
	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/lifecycle"
	"crossing/internal/domain/repository"
	"crossing/internal/domain/service"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type matchingService struct {
	epochs       service.EpochState
	groups       repository.GroupIndex
	matchRecords repository.MatchRecordRepository
	geoPoints    repository.GeoPointRepository
	txManager    repository.TransactionManager
	blocks       service.BlockService
	hides        service.HideService
	clock        service.Clock
	cfg          *config.CrossingConfig
	logger       *slog.Logger

	running atomic.Bool
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	Epochs       service.EpochState
	Groups       repository.GroupIndex
	MatchRecords repository.MatchRecordRepository
	GeoPoints    repository.GeoPointRepository
	TxManager    repository.TransactionManager
	Blocks       service.BlockService
	Hides        service.HideService
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMatchingService is the constructor for matchingService.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		epochs:       params.Epochs,
		groups:       params.Groups,
		matchRecords: params.MatchRecords,
		geoPoints:    params.GeoPoints,
		txManager:    params.TxManager,
		blocks:       params.Blocks,
		hides:        params.Hides,
		clock:        params.Clock,
		cfg:          crossingConfig(params.Config),
		logger:       params.Logger,
	}
}

func (srv *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RunPass rotates the epoch and processes the one it closed. The closed
// epoch's cache keys are purged however the pass ends, so once rotated the
// pass no longer follows the caller's cancellation.
func (srv *matchingService) RunPass(ctx context.Context) (*usecase.PassReport, error) {
	if !srv.running.CompareAndSwap(false, true) {
		return nil, domainerrors.ErrPassInProgress
	}
	defer srv.running.Store(false)

	ctx = context.WithoutCancel(ctx)

	startedAt := srv.clock.Now()
	closed := srv.epochs.Rotate(startedAt)
	report := &usecase.PassReport{EpochID: closed.ID}
	logger := srv.log(ctx).With(slog.Int64("epoch_id", closed.ID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	defer srv.cleanup(ctx, closed, logger)

	blocks, err := srv.loadBlockSet(ctx)
	if err != nil {
		logger.Error("Failed to snapshot block relations", slog.Any("error", err))

		return report, err
	}

	if err := srv.matchGroups(ctx, closed, startedAt, blocks, report, logger); err != nil {
		return report, err
	}

	events := srv.flush(ctx, closed, report, logger)
	if len(events) > 0 {
		srv.accumulate(ctx, events, startedAt, report, logger)
	}

	report.Duration = srv.clock.Now().Sub(startedAt)
	logger.Info("Matching pass finished",
		slog.Int("groups", report.Groups),
		slog.Int("members", report.Members),
		slog.Int("events", report.Events),
		slog.Int("flushed", report.Flushed),
		slog.Int("pairs", report.Pairs),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

func (srv *matchingService) loadBlockSet(ctx context.Context) (entity.BlockSet, error) {
	relations, err := srv.blocks.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list block relations")
	}

	return entity.NewBlockSet(relations), nil
}

// matchGroups fans the closed epoch's groups out over a bounded pool. A
// failing group is logged and leaves the others untouched.
func (srv *matchingService) matchGroups(
	ctx context.Context,
	epoch entity.Epoch,
	matchedAt time.Time,
	blocks entity.BlockSet,
	report *usecase.PassReport,
	logger *slog.Logger,
) error {
	groupIDs, err := srv.groups.Groups(ctx, epoch.ID)
	if err != nil {
		logger.Error("Failed to list groups", slog.Any("error", err))

		return errors.Wrap(err, "failed to list groups")
	}
	report.Groups = len(groupIDs)

	var (
		members atomic.Int64
		g       errgroup.Group
	)
	g.SetLimit(srv.cfg.PassWorkers)

	for _, groupID := range groupIDs {
		g.Go(func() error {
			n, err := srv.matchGroup(ctx, epoch, groupID, matchedAt, blocks)
			members.Add(int64(n))
			if err != nil {
				logger.Error("Failed to match group", slog.String("group_id", groupID), slog.Any("error", err))
			}

			return nil
		})
	}
	_ = g.Wait()

	report.Members = int(members.Load())

	return nil
}

// matchGroup emits one event per member towards every close, visible
// candidate of the same group, and returns the number of members visited.
func (srv *matchingService) matchGroup(
	ctx context.Context,
	epoch entity.Epoch,
	groupID string,
	matchedAt time.Time,
	blocks entity.BlockSet,
) (int, error) {
	memberIDs, err := srv.groups.Members(ctx, epoch.ID, groupID)
	if err != nil {
		return 0, err
	}

	for i, userID := range memberIDs {
		neighbors, err := srv.groups.Neighbors(ctx, epoch.ID, groupID, userID, srv.cfg.MatchRadiusKm)
		if err != nil {
			return i, err
		}

		self, candidates := splitCandidates(userID, neighbors, blocks)
		if self == nil || len(candidates) == 0 {
			continue
		}

		ids := make([]uuid.UUID, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.UserID)
		}

		hidden, err := srv.hides.HiddenAmong(ctx, userID, ids)
		if err != nil {
			return i, errors.Wrap(err, "failed to check hide relations")
		}

		events := make([]entity.MatchEvent, 0, len(candidates))
		for _, c := range candidates {
			if hidden[c.UserID] {
				continue
			}

			events = append(events, entity.MatchEvent{
				UserID:             userID,
				OtherUserID:        c.UserID,
				Coordinates:        c.Coordinates,
				SubjectCoordinates: self.Coordinates,
				EpochID:            epoch.ID,
				MatchedAt:          matchedAt,
			})
		}

		if err := srv.groups.PushEvents(ctx, epoch.ID, events); err != nil {
			return i, err
		}
	}

	return len(memberIDs), nil
}

// splitCandidates separates the user from the neighbors and drops blocked ones.
func splitCandidates(userID uuid.UUID, neighbors []entity.GroupMember, blocks entity.BlockSet) (*entity.GroupMember, []entity.GroupMember) {
	var self *entity.GroupMember
	candidates := make([]entity.GroupMember, 0, len(neighbors))

	for i := range neighbors {
		n := neighbors[i]
		if n.UserID == userID {
			self = &n

			continue
		}

		if blocks.Blocked(userID, n.UserID) {
			continue
		}

		candidates = append(candidates, n)
	}

	return self, candidates
}

// flush moves the epoch's events into the match history. Store failures are
// logged and swallowed; the event list is cleared either way. It returns the
// events that were persisted.
func (srv *matchingService) flush(ctx context.Context, epoch entity.Epoch, report *usecase.PassReport, logger *slog.Logger) []entity.MatchEvent {
	defer func() {
		if err := srv.groups.ClearEvents(ctx, epoch.ID); err != nil {
			logger.Error("Failed to clear match events", slog.Any("error", err))
		}
	}()

	events, err := srv.groups.Events(ctx, epoch.ID)
	if err != nil {
		logger.Error("Failed to read match events", slog.Any("error", err))

		return nil
	}
	report.Events = len(events)

	if len(events) == 0 {
		return nil
	}

	records := make([]*entity.MatchRecord, 0, len(events))
	for _, e := range events {
		matchedAt := e.MatchedAt.UTC()
		records = append(records, &entity.MatchRecord{
			ID:                 uuid.Must(uuid.NewV7()),
			UserID:             e.UserID,
			OtherUserID:        e.OtherUserID,
			Coordinates:        e.Coordinates,
			SubjectCoordinates: e.SubjectCoordinates,
			EpochID:            e.EpochID,
			MatchedAt:          matchedAt,
			ExpiresAt:          matchedAt.Add(srv.cfg.MatchRecordTTL),
		})
	}

	if err := srv.matchRecords.CreateBatch(ctx, records); err != nil {
		logger.Error("Failed to flush match events", slog.Int("events", len(events)), slog.Any("error", err))

		return nil
	}
	report.Flushed = len(records)

	return events
}

// accumulate counts each unordered pair once per epoch.
func (srv *matchingService) accumulate(ctx context.Context, events []entity.MatchEvent, now time.Time, report *usecase.PassReport, logger *slog.Logger) {
	keys := uniquePairKeys(events)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pairRepo := repoFactory.NewPairAggregateRepository()
		for _, key := range keys {
			if err := pairRepo.Increment(ctx, key, entity.CategoryCrossing, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to accumulate pairs", slog.Int("pairs", len(keys)), slog.Any("error", err))

		return
	}

	report.Pairs = len(keys)
}

// cleanup purges the closed epoch from the cache and drops expired rows.
func (srv *matchingService) cleanup(ctx context.Context, epoch entity.Epoch, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.PassDrainTimeout)
	defer cancel()

	if err := srv.groups.Purge(ctx, epoch.ID); err != nil {
		logger.Error("Failed to purge epoch", slog.Any("error", err))
	}

	now := srv.clock.Now()

	if n, err := srv.geoPoints.DeleteExpired(ctx, now); err != nil {
		logger.Error("Failed to purge expired geo points", slog.Any("error", err))
	} else if n > 0 {
		logger.Debug("Purged expired geo points", slog.Int64("count", n))
	}

	if n, err := srv.matchRecords.DeleteExpired(ctx, now); err != nil {
		logger.Error("Failed to purge expired match records", slog.Any("error", err))
	} else if n > 0 {
		logger.Debug("Purged expired match records", slog.Int64("count", n))
	}
}
