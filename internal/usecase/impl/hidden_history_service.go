package impl

import (
	"context"
	"log/slog"
	"time"

	"crossing/config"
	deliverycontext "crossing/internal/delivery/context"
	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/domain/service"
	"crossing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type hiddenHistoryService struct {
	snapshots    repository.HiddenSnapshotRepository
	matchRecords repository.MatchRecordRepository
	profiles     service.ProfileService
	clock        service.Clock
	cfg          *config.CrossingConfig
	loc          *time.Location
	logger       *slog.Logger
}

// HiddenHistoryServiceParams holds dependencies for HiddenHistoryService, injected by Fx.
type HiddenHistoryServiceParams struct {
	fx.In

	Snapshots    repository.HiddenSnapshotRepository
	MatchRecords repository.MatchRecordRepository
	Profiles     service.ProfileService
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewHiddenHistoryService is the constructor for hiddenHistoryService.
func NewHiddenHistoryService(params HiddenHistoryServiceParams) usecase.HiddenHistoryUsecase {
	cfg := crossingConfig(params.Config)

	return &hiddenHistoryService{
		snapshots:    params.Snapshots,
		matchRecords: params.MatchRecords,
		profiles:     params.Profiles,
		clock:        params.Clock,
		cfg:          cfg,
		loc:          cfg.Location(),
		logger:       params.Logger,
	}
}

func (srv *hiddenHistoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dayBounds is the local calendar day [start, end) of one bucket.
type dayBounds struct {
	dayAgo int
	start  time.Time
	end    time.Time
}

// Trail returns the pair's past days, recomputing the cached snapshots when
// yesterday's bucket is missing or was computed on another day.
func (srv *hiddenHistoryService) Trail(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.HiddenTrailDay, error) {
	if userID == otherUserID {
		return nil, domainerrors.NewValidationError("otherUserId", "must differ from the caller")
	}

	if _, err := srv.profiles.FindProfile(ctx, otherUserID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return nil, domainerrors.ErrCounterpartNotFound
		}

		return nil, errors.Wrap(err, "failed to find counterpart profile")
	}

	days := srv.dayBuckets(srv.clock.Now())

	records, err := srv.matchRecords.FindByPairBetween(ctx, userID, otherUserID, days[len(days)-1].start, days[0].end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load match history")
	}
	byDay := bucketRecords(records, days)

	snapshots, err := srv.loadSnapshots(ctx, userID, otherUserID, days, byDay)
	if err != nil {
		return nil, err
	}

	trail := make([]*entity.HiddenTrailDay, 0, len(snapshots))
	for _, s := range snapshots {
		points := make([]entity.TrailPoint, 0, len(byDay[s.DayAgo]))
		for _, r := range byDay[s.DayAgo] {
			points = append(points, entity.TrailPoint{Coordinates: r.Coordinates, MatchedAt: r.MatchedAt})
		}

		trail = append(trail, &entity.HiddenTrailDay{
			DayAgo: s.DayAgo,
			Date:   s.Date.In(srv.loc),
			Meet:   s.Meet,
			Spots:  s.Spots,
			Trail:  points,
		})
	}

	return trail, nil
}

// dayBuckets returns the configured number of past local days, yesterday first.
func (srv *hiddenHistoryService) dayBuckets(now time.Time) []dayBounds {
	local := now.In(srv.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, srv.loc)

	days := make([]dayBounds, 0, srv.cfg.HiddenDays)
	for d := 1; d <= srv.cfg.HiddenDays; d++ {
		days = append(days, dayBounds{
			dayAgo: d,
			start:  today.AddDate(0, 0, -d),
			end:    today.AddDate(0, 0, -d+1),
		})
	}

	return days
}

func bucketRecords(records []*entity.MatchRecord, days []dayBounds) map[int][]*entity.MatchRecord {
	byDay := make(map[int][]*entity.MatchRecord, len(days))

	for _, r := range records {
		for _, d := range days {
			if !r.MatchedAt.Before(d.start) && r.MatchedAt.Before(d.end) {
				byDay[d.dayAgo] = append(byDay[d.dayAgo], r)

				break
			}
		}
	}

	return byDay
}

func (srv *hiddenHistoryService) loadSnapshots(
	ctx context.Context,
	userID, otherUserID uuid.UUID,
	days []dayBounds,
	byDay map[int][]*entity.MatchRecord,
) ([]*entity.HiddenSnapshot, error) {
	yesterday := days[0].start

	cached, err := srv.snapshots.FindByPairAndDay(ctx, userID, otherUserID, 1)
	switch {
	case err == nil && cached.Date.Equal(yesterday):
		snapshots, err := srv.snapshots.FindByPair(ctx, userID, otherUserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load hidden snapshots")
		}

		return snapshots, nil
	case err != nil && !errors.Is(err, repository.ErrHiddenSnapshotNotFound):
		return nil, errors.Wrap(err, "failed to load hidden snapshot")
	}

	snapshots := make([]*entity.HiddenSnapshot, 0, len(days))
	for _, d := range days {
		records := byDay[d.dayAgo]
		times := make([]time.Time, 0, len(records))
		for _, r := range records {
			times = append(times, r.MatchedAt)
		}

		meet, spots := computeMeetSpots(times, srv.cfg.SpotGap)
		snapshots = append(snapshots, &entity.HiddenSnapshot{
			UserID:      userID,
			OtherUserID: otherUserID,
			DayAgo:      d.dayAgo,
			Date:        d.start,
			Meet:        meet,
			Spots:       spots,
		})
	}

	if err := srv.snapshots.ReplaceForPair(ctx, userID, otherUserID, snapshots); err != nil {
		return nil, errors.Wrap(err, "failed to store hidden snapshots")
	}

	srv.log(ctx).Debug("Hidden snapshots recomputed", slog.Any("user_id", userID), slog.Any("other_user_id", otherUserID))

	return snapshots, nil
}
